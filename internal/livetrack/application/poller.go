package application

import (
	"context"
	"log"
	"time"

	livetrack "github.com/MiserableKnight/VJC-sub000/internal/livetrack/domain"
	"github.com/MiserableKnight/VJC-sub000/internal/observability/metrics"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// Refresher is the data-fetch path triggered on each permitted refresh.
type Refresher func(ctx context.Context, now time.Time) error

// Poller owns the only long-lived state in live tracking: the timer that
// waits for the scheduler's next instant. The scheduler itself stays pure;
// the poller re-evaluates at exactly the instant it was told.
type Poller struct {
	scheduler *livetrack.Scheduler
	clock     reporting.Clock
	refresh   Refresher
	logger    *log.Logger
}

// NewPoller constructs a Poller.
func NewPoller(scheduler *livetrack.Scheduler, clock reporting.Clock, refresh Refresher, logger *log.Logger) *Poller {
	if clock == nil {
		clock = reporting.SystemClock{}
	}
	return &Poller{scheduler: scheduler, clock: clock, refresh: refresh, logger: logger}
}

// Start runs the poll loop until the context is cancelled.
func (p *Poller) Start(ctx context.Context) {
	if p == nil || p.scheduler == nil || p.refresh == nil {
		return
	}
	for {
		now := p.clock.Now()
		state := p.scheduler.Evaluate(now)
		metrics.IncRefreshEvaluation(state.WithinWindow)

		if state.WithinWindow {
			if err := p.refresh(ctx, now); err != nil && p.logger != nil {
				p.logger.Printf("live-track refresh error: %v", err)
			}
		}

		timer := time.NewTimer(time.Until(state.NextRefresh))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

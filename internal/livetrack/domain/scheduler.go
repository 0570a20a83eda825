package livetrack

import (
	"time"

	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// ScheduleState is the result of one scheduler evaluation. It is derived,
// never persisted; each evaluation is a pure function of now and the
// configured window.
type ScheduleState struct {
	WithinWindow bool      `json:"within_window"`
	NextRefresh  time.Time `json:"next_refresh"`
}

// Scheduler decides whether live tracking may refresh now and when the
// next refresh is due. It holds no mutable state and is safe for
// concurrent use; the caller owns the timer that acts on NextRefresh.
type Scheduler struct {
	window   OperatingWindow
	interval time.Duration
}

// NewScheduler validates and builds a Scheduler.
func NewScheduler(window OperatingWindow, interval time.Duration) (*Scheduler, error) {
	if interval <= 0 {
		return nil, ErrIntervalNotPositive
	}
	return &Scheduler{window: window, interval: interval}, nil
}

// Window returns the configured operating window.
func (s *Scheduler) Window() OperatingWindow { return s.window }

// Interval returns the configured refresh interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Evaluate computes the schedule state at now.
//
// Inside the window the next refresh is always now+interval, even when that
// crosses the window end: the scheduler never snaps to the boundary, it
// returns a concrete instant and the evaluation at that instant reports
// dormant. Outside the window the next refresh is the next window start —
// today's start if it is still ahead in reporting time, otherwise
// tomorrow's — converted back to an absolute instant so a timer fires
// correctly wherever the evaluating machine sits.
func (s *Scheduler) Evaluate(now time.Time) ScheduleState {
	minutes := reporting.MinutesSinceMidnight(now)
	if s.window.Contains(minutes) {
		return ScheduleState{
			WithinWindow: true,
			NextRefresh:  now.Add(s.interval).UTC(),
		}
	}
	return ScheduleState{
		WithinWindow: false,
		NextRefresh:  s.NextWindowStart(now),
	}
}

// NextWindowStart returns the absolute instant of the next window start
// strictly after now, handling the wrap to the next calendar day.
func (s *Scheduler) NextWindowStart(now time.Time) time.Time {
	rt := reporting.ToReportingTime(now)
	day := rt
	if rt.Hour()*60+rt.Minute() >= s.window.StartMinutes() {
		day = rt.AddDate(0, 0, 1)
	}
	start := time.Date(day.Year(), day.Month(), day.Day(),
		s.window.StartHour(), s.window.StartMinute(), 0, 0, reporting.ReportingZone())
	return start.UTC()
}

// IsRefreshDue reports whether a refresh may fire at now, given when the
// last one fired: the window must be open and at least one interval must
// have elapsed.
func (s *Scheduler) IsRefreshDue(now, lastRefresh time.Time) bool {
	if !s.window.Contains(reporting.MinutesSinceMidnight(now)) {
		return false
	}
	return !now.Before(lastRefresh.Add(s.interval))
}

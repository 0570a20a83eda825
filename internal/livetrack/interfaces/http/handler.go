package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	livetrack "github.com/MiserableKnight/VJC-sub000/internal/livetrack/domain"
	"github.com/MiserableKnight/VJC-sub000/internal/observability/metrics"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// ScheduleHandler serves the live-track schedule state.
type ScheduleHandler struct {
	scheduler *livetrack.Scheduler
	clock     reporting.Clock
}

// NewScheduleHandler constructs a handler.
func NewScheduleHandler(scheduler *livetrack.Scheduler, clock reporting.Clock) (*ScheduleHandler, error) {
	if scheduler == nil {
		return nil, errors.New("schedule handler: nil scheduler")
	}
	if clock == nil {
		clock = reporting.SystemClock{}
	}
	return &ScheduleHandler{scheduler: scheduler, clock: clock}, nil
}

// ServeHTTP handles GET /api/v1/livetrack/schedule.
func (h *ScheduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h == nil || h.scheduler == nil {
		http.Error(w, "server not ready", http.StatusServiceUnavailable)
		return
	}

	now := h.clock.Now()
	if value := r.URL.Query().Get("as_of"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			http.Error(w, "as_of must be RFC3339", http.StatusBadRequest)
			return
		}
		now = parsed.UTC()
	}

	state := h.scheduler.Evaluate(now)
	metrics.IncRefreshEvaluation(state.WithinWindow)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		livetrack.ScheduleState
		Window string `json:"window"`
	}{ScheduleState: state, Window: h.scheduler.Window().String()})
}

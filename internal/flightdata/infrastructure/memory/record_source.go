package memory

import (
	"context"
	"sync"

	flightdata "github.com/MiserableKnight/VJC-sub000/internal/flightdata/domain"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// RecordSource is an in-memory record source for tests and local runs.
type RecordSource struct {
	mu         sync.RWMutex
	daily      []flightdata.DailyRecord
	cumulative []flightdata.CumulativeRecord
	failures   []flightdata.FailureEvent
}

// NewRecordSource constructs an empty record source.
func NewRecordSource() *RecordSource {
	return &RecordSource{}
}

// SeedDaily replaces the daily records.
func (r *RecordSource) SeedDaily(records []flightdata.DailyRecord) {
	r.mu.Lock()
	r.daily = append([]flightdata.DailyRecord(nil), records...)
	r.mu.Unlock()
}

// SeedCumulative replaces the cumulative records.
func (r *RecordSource) SeedCumulative(records []flightdata.CumulativeRecord) {
	r.mu.Lock()
	r.cumulative = append([]flightdata.CumulativeRecord(nil), records...)
	r.mu.Unlock()
}

// SeedFailures replaces the failure events.
func (r *RecordSource) SeedFailures(events []flightdata.FailureEvent) {
	r.mu.Lock()
	r.failures = append([]flightdata.FailureEvent(nil), events...)
	r.mu.Unlock()
}

// FetchDailyRecords returns daily records up to and including cutoff.
func (r *RecordSource) FetchDailyRecords(ctx context.Context, cutoff reporting.DateKey) ([]flightdata.DailyRecord, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []flightdata.DailyRecord
	for _, record := range r.daily {
		if !record.Date.After(cutoff) {
			result = append(result, record)
		}
	}
	return result, nil
}

// FetchCumulativeRecords returns cumulative records up to and including cutoff.
func (r *RecordSource) FetchCumulativeRecords(ctx context.Context, cutoff reporting.DateKey) ([]flightdata.CumulativeRecord, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []flightdata.CumulativeRecord
	for _, record := range r.cumulative {
		if !record.Date.After(cutoff) {
			result = append(result, record)
		}
	}
	return result, nil
}

// FetchFailureEvents returns all failure events.
func (r *RecordSource) FetchFailureEvents(ctx context.Context) ([]flightdata.FailureEvent, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]flightdata.FailureEvent(nil), r.failures...), nil
}

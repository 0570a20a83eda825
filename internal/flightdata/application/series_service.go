package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	flightdata "github.com/MiserableKnight/VJC-sub000/internal/flightdata/domain"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// SeriesService serves the visible, merged metric series: it fetches raw
// records from the source collaborator, applies the same-day visibility
// gate, and hands the survivors to the series merge.
type SeriesService struct {
	source     flightdata.RecordSource
	clock      reporting.Clock
	cutoffHour int
}

// NewSeriesService constructs the service.
func NewSeriesService(source flightdata.RecordSource, clock reporting.Clock, cutoffHour int) (*SeriesService, error) {
	if source == nil {
		return nil, errors.New("series service: nil record source")
	}
	if clock == nil {
		clock = reporting.SystemClock{}
	}
	if cutoffHour < 0 || cutoffHour > 23 {
		return nil, fmt.Errorf("series service: cutoff hour %d out of range", cutoffHour)
	}
	return &SeriesService{source: source, clock: clock, cutoffHour: cutoffHour}, nil
}

// VisibleSeries returns the merged series visible at now. A zero now falls
// back to the service clock. Source errors propagate untouched so the host
// owns retry policy.
func (s *SeriesService) VisibleSeries(ctx context.Context, now time.Time) ([]flightdata.MetricPoint, error) {
	if now.IsZero() {
		now = s.clock.Now()
	}
	cutoff := reporting.DateKeyOf(now)

	daily, err := s.source.FetchDailyRecords(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	cumulative, err := s.source.FetchCumulativeRecords(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	failures, err := s.source.FetchFailureEvents(ctx)
	if err != nil {
		return nil, err
	}

	daily = flightdata.FilterDailyRecords(daily, now, s.cutoffHour)
	cumulative = flightdata.FilterCumulativeRecords(cumulative, now, s.cutoffHour)

	return flightdata.MergeSeries(daily, cumulative, failures), nil
}

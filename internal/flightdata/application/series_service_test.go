package application

import (
	"context"
	"errors"
	"testing"
	"time"

	flightdata "github.com/MiserableKnight/VJC-sub000/internal/flightdata/domain"
	"github.com/MiserableKnight/VJC-sub000/internal/flightdata/infrastructure/memory"
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

func ptr(v float64) *float64 { return &v }

func day(y, m, d int) reporting.DateKey {
	return reporting.DateKey{Year: y, Month: m, Day: d}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }

func seededSource() *memory.RecordSource {
	source := memory.NewRecordSource()
	source.SeedDaily([]flightdata.DailyRecord{
		{Date: day(2025, 5, 8), FlightHours: ptr(3.2), FlightCycles: ptr(2)},
		{Date: day(2025, 5, 9), FlightHours: ptr(1.1), FlightCycles: ptr(1)},
	})
	source.SeedCumulative([]flightdata.CumulativeRecord{
		{Date: day(2025, 5, 8), CumulativeHours: ptr(200), CumulativeCycles: ptr(150)},
		{Date: day(2025, 5, 9), CumulativeHours: ptr(201.1), CumulativeCycles: ptr(151)},
	})
	source.SeedFailures([]flightdata.FailureEvent{
		{Date: day(2025, 5, 1), Severity: 2, AircraftID: "VN-A001"},
		{Date: day(2025, 5, 2), Severity: 1, AircraftID: "VN-A001"},
	})
	return source
}

func TestVisibleSeriesHidesTodayBeforeCutoff(t *testing.T) {
	// 2025-05-09 10:00 reporting time = 02:00 UTC.
	now := time.Date(2025, 5, 9, 2, 0, 0, 0, time.UTC)
	service, err := NewSeriesService(seededSource(), fixedClock{at: now}, 21)
	if err != nil {
		t.Fatalf("new series service: %v", err)
	}

	series, err := service.VisibleSeries(context.Background(), now)
	if err != nil {
		t.Fatalf("visible series: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("expected only 5/8 visible, got %d points", len(series))
	}
	if series[0].Date != day(2025, 5, 8) {
		t.Fatalf("unexpected point %v", series[0].Date)
	}
	// One countable failure by 5/8 over 200 hours.
	if series[0].FailureRatePer1000H != 5 {
		t.Fatalf("failure rate: got %v want 5", series[0].FailureRatePer1000H)
	}
}

func TestVisibleSeriesShowsTodayAfterCutoff(t *testing.T) {
	// 2025-05-09 21:00 reporting time = 13:00 UTC.
	now := time.Date(2025, 5, 9, 13, 0, 0, 0, time.UTC)
	service, err := NewSeriesService(seededSource(), fixedClock{at: now}, 21)
	if err != nil {
		t.Fatalf("new series service: %v", err)
	}

	series, err := service.VisibleSeries(context.Background(), now)
	if err != nil {
		t.Fatalf("visible series: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected both days visible, got %d points", len(series))
	}
	if series[1].Date != day(2025, 5, 9) {
		t.Fatalf("series must end at today: %v", series[1].Date)
	}
}

func TestVisibleSeriesZeroNowUsesClock(t *testing.T) {
	now := time.Date(2025, 5, 9, 13, 0, 0, 0, time.UTC)
	service, err := NewSeriesService(seededSource(), fixedClock{at: now}, 21)
	if err != nil {
		t.Fatalf("new series service: %v", err)
	}
	series, err := service.VisibleSeries(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("visible series: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("clock fallback broken, got %d points", len(series))
	}
}

type failingSource struct {
	err error
}

func (s failingSource) FetchDailyRecords(context.Context, reporting.DateKey) ([]flightdata.DailyRecord, error) {
	return nil, s.err
}

func (s failingSource) FetchCumulativeRecords(context.Context, reporting.DateKey) ([]flightdata.CumulativeRecord, error) {
	return nil, s.err
}

func (s failingSource) FetchFailureEvents(context.Context) ([]flightdata.FailureEvent, error) {
	return nil, s.err
}

func TestVisibleSeriesPropagatesSourceErrors(t *testing.T) {
	sourceErr := errors.New("feed unavailable")
	service, err := NewSeriesService(failingSource{err: sourceErr}, fixedClock{at: time.Now()}, 21)
	if err != nil {
		t.Fatalf("new series service: %v", err)
	}
	if _, err := service.VisibleSeries(context.Background(), time.Now()); !errors.Is(err, sourceErr) {
		t.Fatalf("source error must propagate untouched, got %v", err)
	}
}

func TestNewSeriesServiceValidation(t *testing.T) {
	if _, err := NewSeriesService(nil, fixedClock{}, 21); err == nil {
		t.Fatalf("nil source must be rejected")
	}
	if _, err := NewSeriesService(seededSource(), fixedClock{}, 24); err == nil {
		t.Fatalf("out-of-range cutoff must be rejected")
	}
	if _, err := NewSeriesService(seededSource(), nil, 21); err != nil {
		t.Fatalf("nil clock should default to system clock: %v", err)
	}
}

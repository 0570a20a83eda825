package flightdata

import (
	"math"
	"sort"

	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// MergeSeries joins daily deltas and cumulative totals into one series
// ordered ascending by DateKey, then derives the failure rate per point.
// The output is deterministic regardless of input order, and a DateKey seen
// by only one source still yields a point with the other field family nil.
func MergeSeries(daily []DailyRecord, cumulative []CumulativeRecord, failures []FailureEvent) []MetricPoint {
	byDate := make(map[reporting.DateKey]*MetricPoint, len(daily)+len(cumulative))

	point := func(date reporting.DateKey) *MetricPoint {
		if existing, ok := byDate[date]; ok {
			return existing
		}
		created := &MetricPoint{Date: date}
		byDate[date] = created
		return created
	}

	for _, record := range daily {
		p := point(record.Date)
		p.FlightHours = copyOptional(record.FlightHours)
		p.FlightCycles = copyOptional(record.FlightCycles)
	}
	for _, record := range cumulative {
		p := point(record.Date)
		p.CumulativeHours = copyOptional(record.CumulativeHours)
		p.CumulativeCycles = copyOptional(record.CumulativeCycles)
	}

	result := make([]MetricPoint, 0, len(byDate))
	for _, p := range byDate {
		p.FailureRatePer1000H = FailureRatePer1000Hours(failures, p.Date, p.CumulativeHours)
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// FailureRatePer1000Hours derives failures per 1000 flight hours as of a
// date. Only severity above 1 counts. The full event history is rescanned
// on every call so out-of-order amendments to the history stay correct.
// Zero or absent cumulative hours yields exactly 0: early in an aircraft's
// life zero hours is legitimate, not a fault.
func FailureRatePer1000Hours(failures []FailureEvent, asOf reporting.DateKey, cumulativeHours *float64) float64 {
	if cumulativeHours == nil || *cumulativeHours == 0 {
		return 0
	}
	count := 0
	for _, event := range failures {
		if event.Severity > 1 && !event.Date.After(asOf) {
			count++
		}
	}
	rate := 1000 * float64(count) / *cumulativeHours
	return math.Round(rate*100) / 100
}

func copyOptional(value *float64) *float64 {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

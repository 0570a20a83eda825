package flightdata

import (
	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// DailyRecord carries the deltas flown on one calendar date. Fields are
// pointers because the feed distinguishes "no data" from "no flying":
// absent is not zero.
type DailyRecord struct {
	Date         reporting.DateKey
	FlightHours  *float64
	FlightCycles *float64
}

// CumulativeRecord carries running totals as of one calendar date.
type CumulativeRecord struct {
	Date             reporting.DateKey
	CumulativeHours  *float64
	CumulativeCycles *float64
}

// FailureEvent is one reported failure. Severity 1 is informational and
// never counts toward the failure rate.
type FailureEvent struct {
	Date       reporting.DateKey
	Severity   int
	AircraftID string
}

// MetricPoint is one row of the unified output series: daily deltas,
// running totals, and derived metrics for a single DateKey.
type MetricPoint struct {
	Date                reporting.DateKey `json:"date"`
	FlightHours         *float64          `json:"flight_hours,omitempty"`
	FlightCycles        *float64          `json:"flight_cycles,omitempty"`
	CumulativeHours     *float64          `json:"cumulative_hours,omitempty"`
	CumulativeCycles    *float64          `json:"cumulative_cycles,omitempty"`
	FailureRatePer1000H float64           `json:"failure_rate_per_1000h"`
}

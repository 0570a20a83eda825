package flightdata

import (
	"time"

	"github.com/MiserableKnight/VJC-sub000/internal/reporting"
)

// The daily ledger is provisional until a fixed reporting-time cutoff;
// before that, the current day's row is hidden entirely rather than shown
// as a partial total.

// ShouldShowToday reports whether the current reporting day's record may be
// shown at the given instant. The boundary is inclusive at the cutoff hour.
func ShouldShowToday(now time.Time, cutoffHour int) bool {
	return reporting.ToReportingTime(now).Hour() >= cutoffHour
}

// VisibleDate reports whether a record keyed to date may be shown at now.
// Only the current reporting day is ever gated; past dates always pass, and
// future dates pass through unchanged (upstream is trusted not to emit
// them, and hiding them is not this gate's call).
func VisibleDate(date reporting.DateKey, now time.Time, cutoffHour int) bool {
	if date != reporting.DateKeyOf(now) {
		return true
	}
	return ShouldShowToday(now, cutoffHour)
}

// FilterDailyRecords drops daily rows hidden by the cutoff policy.
func FilterDailyRecords(records []DailyRecord, now time.Time, cutoffHour int) []DailyRecord {
	result := make([]DailyRecord, 0, len(records))
	for _, record := range records {
		if VisibleDate(record.Date, now, cutoffHour) {
			result = append(result, record)
		}
	}
	return result
}

// FilterCumulativeRecords drops cumulative rows hidden by the cutoff policy.
func FilterCumulativeRecords(records []CumulativeRecord, now time.Time, cutoffHour int) []CumulativeRecord {
	result := make([]CumulativeRecord, 0, len(records))
	for _, record := range records {
		if VisibleDate(record.Date, now, cutoffHour) {
			result = append(result, record)
		}
	}
	return result
}

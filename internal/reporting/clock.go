package reporting

import "time"

// All business-rule date/time decisions happen in the fixed reporting
// timezone (UTC+8, no daylight saving). The offset is applied directly so
// the conversion never depends on the host tz database.
var reportingZone = time.FixedZone("UTC+8", 8*60*60)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current instant in UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// ToReportingTime converts an absolute instant to reporting-zone wall time.
func ToReportingTime(t time.Time) time.Time {
	return t.UTC().In(reportingZone)
}

// ReportingZone returns the fixed reporting timezone.
func ReportingZone() *time.Location { return reportingZone }

// MinutesSinceMidnight returns the reporting-time minute of day for t.
func MinutesSinceMidnight(t time.Time) int {
	rt := ToReportingTime(t)
	return rt.Hour()*60 + rt.Minute()
}

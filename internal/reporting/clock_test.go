package reporting

import (
	"testing"
	"time"
)

func TestToReportingTimeFixedOffset(t *testing.T) {
	instant := time.Date(2025, 5, 9, 13, 0, 0, 0, time.UTC)
	rt := ToReportingTime(instant)
	if rt.Hour() != 21 || rt.Minute() != 0 {
		t.Fatalf("expected 21:00 reporting time, got %02d:%02d", rt.Hour(), rt.Minute())
	}
	if !rt.Equal(instant) {
		t.Fatalf("conversion must not move the instant")
	}
}

func TestToReportingTimeIgnoresSourceZone(t *testing.T) {
	instant := time.Date(2025, 5, 9, 13, 0, 0, 0, time.UTC)
	local := instant.In(time.FixedZone("UTC+9", 9*60*60))
	rt := ToReportingTime(local)
	if rt.Hour() != 21 {
		t.Fatalf("source zone leaked into conversion: hour=%d", rt.Hour())
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	// 23:45 UTC = 07:45 reporting time next day.
	instant := time.Date(2025, 5, 9, 23, 45, 0, 0, time.UTC)
	if got := MinutesSinceMidnight(instant); got != 7*60+45 {
		t.Fatalf("got %d want %d", got, 7*60+45)
	}
}

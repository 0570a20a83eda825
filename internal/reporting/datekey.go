package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKey is a calendar date with no time-of-day component. It is the join
// key between daily and cumulative records; two keys built from equivalent
// textual dates compare equal regardless of separator or time suffix.
type DateKey struct {
	Year  int
	Month int
	Day   int
}

// ParseDateKey normalizes heterogeneous date text into a DateKey.
// Accepted forms: YYYY-MM-DD, YYYY/MM/DD, either with a trailing "T..."
// time component, which is discarded. Malformed input yields an error
// wrapping ErrMalformedDate; the caller chooses skip vs fail.
func ParseDateKey(text string) (DateKey, error) {
	trimmed := strings.TrimSpace(text)
	if idx := strings.Index(trimmed, "T"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.ReplaceAll(trimmed, "-", "/")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	if len(parts[0]) != 4 || len(parts[1]) < 1 || len(parts[1]) > 2 || len(parts[2]) < 1 || len(parts[2]) > 2 {
		return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	for _, part := range parts {
		if !allDigits(part) {
			return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
		}
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}

	key := DateKey{Year: year, Month: month, Day: day}
	if !key.valid() {
		return DateKey{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	return key, nil
}

// DateKeyOf builds the DateKey for the reporting-zone calendar date of t.
func DateKeyOf(t time.Time) DateKey {
	rt := ToReportingTime(t)
	return DateKey{Year: rt.Year(), Month: int(rt.Month()), Day: rt.Day()}
}

// TodayIn returns the current reporting-zone date per the given clock.
func TodayIn(clock Clock) DateKey {
	return DateKeyOf(clock.Now())
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (k DateKey) valid() bool {
	if k.Month < 1 || k.Month > 12 || k.Day < 1 {
		return false
	}
	// Round-trip through time.Date catches per-month day overflow.
	t := time.Date(k.Year, time.Month(k.Month), k.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == k.Year && int(t.Month()) == k.Month && t.Day() == k.Day
}

// Compare orders two DateKeys: -1 if k precedes other, 0 if equal, 1 after.
func (k DateKey) Compare(other DateKey) int {
	a := k.ordinal()
	b := other.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether k is strictly earlier than other.
func (k DateKey) Before(other DateKey) bool { return k.Compare(other) < 0 }

// After reports whether k is strictly later than other.
func (k DateKey) After(other DateKey) bool { return k.Compare(other) > 0 }

func (k DateKey) ordinal() int {
	return k.Year*10000 + k.Month*100 + k.Day
}

// String renders the canonical YYYY-MM-DD form.
func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month, k.Day)
}

// MarshalJSON encodes the canonical form.
func (k DateKey) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(k.String())), nil
}

// UnmarshalJSON decodes any accepted textual form.
func (k *DateKey) UnmarshalJSON(data []byte) error {
	text, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedDate, data)
	}
	parsed, err := ParseDateKey(text)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

package livetrack

import "fmt"

// OperatingWindow is the recurring daily interval, in reporting time,
// during which automatic refresh is permitted. Half-open [start, end); the
// window never spans midnight.
type OperatingWindow struct {
	startMinutes int
	endMinutes   int
}

// NewOperatingWindow validates and builds a window from reporting-time
// hour/minute bounds. Invalid bounds are a configuration error here, never
// silently clamped.
func NewOperatingWindow(startHour, startMinute, endHour, endMinute int) (OperatingWindow, error) {
	start, err := minuteOfDay(startHour, startMinute)
	if err != nil {
		return OperatingWindow{}, err
	}
	end, err := minuteOfDay(endHour, endMinute)
	if err != nil {
		return OperatingWindow{}, err
	}
	if start >= end {
		return OperatingWindow{}, fmt.Errorf("%w: %02d:%02d >= %02d:%02d",
			ErrWindowNotAscending, startHour, startMinute, endHour, endMinute)
	}
	return OperatingWindow{startMinutes: start, endMinutes: end}, nil
}

func minuteOfDay(hour, minute int) (int, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrWindowBoundsOutOfRange, hour, minute)
	}
	return hour*60 + minute, nil
}

// Contains reports whether a reporting-time minute of day is inside the window.
func (w OperatingWindow) Contains(minutes int) bool {
	return minutes >= w.startMinutes && minutes < w.endMinutes
}

// StartHour returns the reporting-time start hour.
func (w OperatingWindow) StartHour() int { return w.startMinutes / 60 }

// StartMinute returns the reporting-time start minute.
func (w OperatingWindow) StartMinute() int { return w.startMinutes % 60 }

// StartMinutes returns minutes since reporting midnight for the start bound.
func (w OperatingWindow) StartMinutes() int { return w.startMinutes }

// EndMinutes returns minutes since reporting midnight for the end bound.
func (w OperatingWindow) EndMinutes() int { return w.endMinutes }

// String renders the window bounds for logs.
func (w OperatingWindow) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		w.startMinutes/60, w.startMinutes%60, w.endMinutes/60, w.endMinutes%60)
}

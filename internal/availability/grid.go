package availability

import (
	"errors"
	"fmt"
	"strconv"
)

// BaseInterval is the smallest schedulable unit, in minutes.
const BaseInterval = 30

const minutesPerDay = 24 * 60

// ErrInvalidTime is returned for values that are not HH:MM.
var ErrInvalidTime = errors.New("availability: invalid time of day")

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a strict five character "HH:MM" value.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	if len(raw) != 5 || raw[2] != ':' || !digits(raw[:2]) || !digits(raw[3:]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	hour, err := strconv.Atoi(raw[:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	minute, err := strconv.Atoi(raw[3:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}
	return TimeOfDay(hour*60 + minute), nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustTimeOfDay is ParseTimeOfDay for constants; it panics on bad input.
func MustTimeOfDay(raw string) TimeOfDay {
	t, err := ParseTimeOfDay(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders the zero-padded HH:MM form stored in the ledger.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Add shifts the time by the given number of minutes, wrapping at midnight.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	v := (int(t) + minutes) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return TimeOfDay(v)
}

// OnGrid reports whether t falls on a base interval boundary.
func (t TimeOfDay) OnGrid() bool {
	return int(t)%BaseInterval == 0
}

// Window is the daily bookable range [Open, Close).
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// DefaultWindow is ten a.m. to five p.m.
var DefaultWindow = Window{Open: 10 * 60, Close: 17 * 60}

// Contains reports whether a meeting may start at t.
func (w Window) Contains(t TimeOfDay) bool {
	return t >= w.Open && t < w.Close
}

// Minutes is the length of the window.
func (w Window) Minutes() int {
	return int(w.Close - w.Open)
}

// Slots lists every grid start time inside the window, in order.
func (w Window) Slots() []string {
	if w.Close <= w.Open {
		return []string{}
	}
	start := w.Open
	if !start.OnGrid() {
		start = start.Add(BaseInterval - int(start)%BaseInterval)
	}
	slots := make([]string, 0, w.Minutes()/BaseInterval)
	for t := start; t < w.Close; t += BaseInterval {
		slots = append(slots, t.String())
	}
	return slots
}

package availability

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// DateLayout is the calendar date format carried in the Date slot and used as
// the ledger key.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("availability: invalid date %q: %w", raw, err)
	}
	return d, nil
}

// Generator produces the bookable grid entries for a calendar date when no
// prior session state exists for it.
type Generator interface {
	Availabilities(date time.Time) []string
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(date time.Time) []string

func (f GeneratorFunc) Availabilities(date time.Time) []string { return f(date) }

// BusinessHours opens every grid entry of the window on weekdays.
type BusinessHours struct {
	Window Window
}

// NewBusinessHours builds the production generator.
func NewBusinessHours(w Window) BusinessHours {
	return BusinessHours{Window: w}
}

func (g BusinessHours) Availabilities(date time.Time) []string {
	if IsWeekend(date) {
		return []string{}
	}
	return g.Window.Slots()
}

// Demo reproduces the canned availability used when showing the bot off:
// Mondays are randomised, Tuesdays and Thursdays are fully booked, and
// Wednesdays and Fridays only have 10:00 and 16:00-17:00 open.
type Demo struct {
	mu          sync.Mutex
	rng         *rand.Rand
	probability float64
}

// NewDemo builds a demo generator driven by rng. A nil rng is seeded from the
// runtime.
func NewDemo(rng *rand.Rand) *Demo {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Demo{rng: rng, probability: 0.3}
}

// NewSeededDemo builds a demo generator with a fixed seed.
func NewSeededDemo(seed uint64) *Demo {
	return NewDemo(rand.New(rand.NewPCG(seed, seed)))
}

func (g *Demo) Availabilities(date time.Time) []string {
	switch date.Weekday() {
	case time.Monday:
		return g.monday()
	case time.Wednesday, time.Friday:
		return []string{"10:00", "16:00", "16:30"}
	default:
		return []string{}
	}
}

func (g *Demo) monday() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := []string{}
	for hour := 10; hour <= 16; hour++ {
		if g.rng.Float64() >= g.probability {
			continue
		}
		onHour := TimeOfDay(hour * 60)
		switch g.rng.IntN(3) {
		case 0:
			out = append(out, onHour.String())
		case 1:
			out = append(out, onHour.Add(BaseInterval).String())
		default:
			out = append(out, onHour.String(), onHour.Add(BaseInterval).String())
		}
	}
	return out
}

// IsWeekend reports whether the office is closed on date.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

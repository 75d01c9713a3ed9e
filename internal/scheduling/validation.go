package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wolfman30/meeting-scheduler/internal/availability"
	"github.com/wolfman30/meeting-scheduler/internal/prompts"
)

// ValidationError marks a malformed slot value. It is recovered by clearing
// the slot and eliciting it again with Prompt.
type ValidationError struct {
	Slot   string
	Prompt prompts.Prompt
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scheduling: invalid %s slot (%s)", e.Slot, e.Prompt.ID)
}

func invalid(slot string, p prompts.Prompt) *ValidationError {
	return &ValidationError{Slot: slot, Prompt: p}
}

// Validate checks the format of the slots that are already set. Duration is
// checked first, then MeetingType, Time and Date.
func (s *Scheduler) Validate(slots SlotSet) *ValidationError {
	if raw := slots.Get(SlotDuration); raw != "" {
		minutes, err := ParseDuration(raw)
		if err != nil || !s.durationAllowed(minutes) {
			return invalid(SlotDuration, prompts.New(prompts.InvalidDuration))
		}
	}

	if raw := slots.Get(SlotMeetingType); raw != "" {
		if !availability.RequiresAddress(raw) && !availability.RequiresInvitationLink(raw) {
			return invalid(SlotMeetingType, prompts.New(prompts.InvalidMeetingType))
		}
	}

	if raw := slots.Get(SlotTime); raw != "" {
		t, err := availability.ParseTimeOfDay(raw)
		if err != nil {
			return invalid(SlotTime, prompts.New(prompts.InvalidTime))
		}
		if !s.window.Contains(t) {
			return invalid(SlotTime, prompts.New(prompts.OutsideHours,
				"Open", s.window.Open.String(), "Close", s.window.Close.String()))
		}
		if !t.OnGrid() {
			return invalid(SlotTime, prompts.New(prompts.OffGrid))
		}
	}

	if raw := slots.Get(SlotDate); raw != "" {
		d, err := availability.ParseDate(raw)
		if err != nil {
			return invalid(SlotDate, prompts.New(prompts.InvalidDate))
		}
		if !d.After(s.today()) {
			return invalid(SlotDate, prompts.New(prompts.TooSoon))
		}
		if availability.IsWeekend(d) {
			return invalid(SlotDate, prompts.New(prompts.Weekend))
		}
	}

	return nil
}

// durationAllowed reports whether minutes is a positive multiple of the base
// interval that fits inside the business window.
func (s *Scheduler) durationAllowed(minutes int) bool {
	return minutes > 0 && minutes%availability.BaseInterval == 0 && minutes <= s.window.Minutes()
}

// ParseDuration reads a duration slot in minutes. Plain integers are minutes;
// ISO-8601 values such as PT1H30M are accepted as well.
func ParseDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	upper := strings.ToUpper(raw)
	if !strings.HasPrefix(upper, "PT") || len(upper) == 2 {
		return 0, fmt.Errorf("scheduling: unrecognised duration %q", raw)
	}
	d, err := time.ParseDuration(strings.ToLower(upper[2:]))
	if err != nil {
		return 0, fmt.Errorf("scheduling: unrecognised duration %q: %w", raw, err)
	}
	if d%time.Minute != 0 {
		return 0, fmt.Errorf("scheduling: duration %q is not whole minutes", raw)
	}
	return int(d / time.Minute), nil
}

// today is midnight UTC of the current calendar day in the scheduler's
// timezone, comparable with availability.ParseDate results.
func (s *Scheduler) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfman30/meeting-scheduler/internal/prompts"
)

func TestValidateRejectsMalformedSlots(t *testing.T) {
	tests := []struct {
		name   string
		slot   string
		value  string
		prompt prompts.ID
	}{
		{"duration not a number", SlotDuration, "an hour-ish", prompts.InvalidDuration},
		{"duration off grid", SlotDuration, "45", prompts.InvalidDuration},
		{"duration zero", SlotDuration, "0", prompts.InvalidDuration},
		{"duration negative", SlotDuration, "-30", prompts.InvalidDuration},
		{"duration longer than the day", SlotDuration, "600", prompts.InvalidDuration},
		{"unknown meeting type", SlotMeetingType, "coffee", prompts.InvalidMeetingType},
		{"time short form", SlotTime, "9:30", prompts.InvalidTime},
		{"time garbage", SlotTime, "ab:cd", prompts.InvalidTime},
		{"time before opening", SlotTime, "09:30", prompts.OutsideHours},
		{"time at closing", SlotTime, "17:00", prompts.OutsideHours},
		{"time quarter past", SlotTime, "10:15", prompts.OffGrid},
		{"date garbage", SlotDate, "next tuesday", prompts.InvalidDate},
		{"date today", SlotDate, "2021-05-20", prompts.TooSoon},
		{"date in the past", SlotDate, "2021-05-01", prompts.TooSoon},
		{"date saturday", SlotDate, "2021-06-05", prompts.Weekend},
		{"date sunday", SlotDate, "2021-06-06", prompts.Weekend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, obs := newTestScheduler(t, nil)
			slots := SlotSet{SlotPerson: "Alice", tt.slot: tt.value}

			v := s.Validate(slots)
			require.NotNil(t, v)
			assert.Equal(t, tt.slot, v.Slot)
			assert.Equal(t, tt.prompt, v.Prompt.ID)
			assert.Contains(t, v.Error(), tt.slot)

			d := handle(t, s, dialogTurn(slots, nil))
			assert.Equal(t, ElicitSlot, d.Kind)
			assert.Equal(t, "invalid_slot", d.Rule)
			assert.Equal(t, tt.slot, d.SlotToElicit)
			assert.Equal(t, "", d.Slots[tt.slot], "offending slot is cleared")
			assert.Equal(t, "Alice", d.Slots[SlotPerson])
			assert.Equal(t, []string{tt.slot}, obs.violations)
		})
	}
}

func TestValidateAcceptsWellFormedSlots(t *testing.T) {
	s, _ := newTestScheduler(t, nil)
	for _, slots := range []SlotSet{
		{},
		fullSlots(),
		{SlotDuration: "60"},
		{SlotDuration: "PT1H30M"},
		{SlotMeetingType: "Personal"},
		{SlotMeetingType: "in person"},
		{SlotTime: "16:30"},
		{SlotDate: "2021-05-21"},
	} {
		assert.Nil(t, s.Validate(slots), "%v", slots)
	}
}

func TestValidationRunsBeforePerson(t *testing.T) {
	s, _ := newTestScheduler(t, nil)
	d := handle(t, s, dialogTurn(SlotSet{SlotTime: "25:00"}, nil))
	assert.Equal(t, SlotTime, d.SlotToElicit)
	assert.Equal(t, prompts.InvalidTime, d.Prompt.ID)
}

func TestValidateDurationChecksFirst(t *testing.T) {
	s, _ := newTestScheduler(t, nil)
	v := s.Validate(SlotSet{SlotDuration: "7", SlotTime: "bad", SlotDate: "bad"})
	require.NotNil(t, v)
	assert.Equal(t, SlotDuration, v.Slot)
}

func TestOutsideHoursPromptCarriesWindow(t *testing.T) {
	s, _ := newTestScheduler(t, nil)
	v := s.Validate(SlotSet{SlotTime: "08:00"})
	require.NotNil(t, v)
	assert.Equal(t, "10:00", v.Prompt.Data["Open"])
	assert.Equal(t, "17:00", v.Prompt.Data["Close"])
}

func TestTomorrowDependsOnTimezone(t *testing.T) {
	prague, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)
	// 23:30 UTC on the 20th is already the 21st in Prague.
	now := time.Date(2021, 5, 20, 23, 30, 0, 0, time.UTC)

	utc := New(Options{Now: func() time.Time { return now }})
	local := New(Options{Now: func() time.Time { return now }, Location: prague})

	assert.Nil(t, utc.Validate(SlotSet{SlotDate: "2021-05-21"}))
	v := local.Validate(SlotSet{SlotDate: "2021-05-21"})
	require.NotNil(t, v)
	assert.Equal(t, prompts.TooSoon, v.Prompt.ID)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "30", want: 30},
		{raw: " 60 ", want: 60},
		{raw: "PT30M", want: 30},
		{raw: "PT1H", want: 60},
		{raw: "pt1h30m", want: 90},
		{raw: "PT", wantErr: true},
		{raw: "PT10S", wantErr: true},
		{raw: "P1D", wantErr: true},
		{raw: "soon", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := ParseDate(raw)
	require.NoError(t, err)
	return d
}

func TestBusinessHoursWeekday(t *testing.T) {
	g := NewBusinessHours(DefaultWindow)
	// 2021-06-01 is a Tuesday.
	got := g.Availabilities(mustDate(t, "2021-06-01"))
	assert.Equal(t, DefaultWindow.Slots(), got)
	assert.Equal(t, got, g.Availabilities(mustDate(t, "2021-06-01")), "generator must be pure")
}

func TestBusinessHoursWeekendClosed(t *testing.T) {
	g := NewBusinessHours(DefaultWindow)
	assert.Empty(t, g.Availabilities(mustDate(t, "2021-06-05")))
	assert.Empty(t, g.Availabilities(mustDate(t, "2021-06-06")))
}

func TestDemoFixedDays(t *testing.T) {
	g := NewSeededDemo(1)
	assert.Empty(t, g.Availabilities(mustDate(t, "2021-06-01")), "tuesday")
	assert.Equal(t, []string{"10:00", "16:00", "16:30"}, g.Availabilities(mustDate(t, "2021-06-02")), "wednesday")
	assert.Empty(t, g.Availabilities(mustDate(t, "2021-06-03")), "thursday")
	assert.Equal(t, []string{"10:00", "16:00", "16:30"}, g.Availabilities(mustDate(t, "2021-06-04")), "friday")
}

func TestDemoMondayDeterministicForSeed(t *testing.T) {
	monday := mustDate(t, "2021-05-31")
	first := NewSeededDemo(42).Availabilities(monday)
	second := NewSeededDemo(42).Availabilities(monday)
	assert.Equal(t, first, second)

	for _, entry := range first {
		tod := MustTimeOfDay(entry)
		assert.True(t, DefaultWindow.Contains(tod), entry)
		assert.True(t, tod.OnGrid(), entry)
	}
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2021-13-01")
	assert.Error(t, err)
	d := mustDate(t, "2021-06-01")
	assert.Equal(t, time.Tuesday, d.Weekday())
}

func TestGeneratorFunc(t *testing.T) {
	g := GeneratorFunc(func(time.Time) []string { return []string{"14:00"} })
	assert.Equal(t, []string{"14:00"}, g.Availabilities(time.Time{}))
}

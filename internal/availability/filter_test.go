package availability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationFor(t *testing.T) {
	tests := []struct {
		meetingType string
		want        int
	}{
		{"online", 30},
		{"Online", 30},
		{"personal", 60},
		{"inperson", 60},
		{"in-person", 60},
		{"In Person", 60},
		{"", BaseInterval},
		{"coffee", BaseInterval},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DurationFor(tt.meetingType), tt.meetingType)
	}
}

func TestIntervals(t *testing.T) {
	assert.Equal(t, 1, Intervals(0))
	assert.Equal(t, 1, Intervals(30))
	assert.Equal(t, 2, Intervals(60))
	assert.Equal(t, 2, Intervals(45))
	assert.Equal(t, 4, Intervals(120))
	assert.Equal(t, MaxIntervals, Intervals(24*60))
	assert.Equal(t, MaxIntervals, Intervals(math.MaxInt))
}

func TestSpanCappedAtOneDay(t *testing.T) {
	span := Span(MustTimeOfDay("10:00"), math.MaxInt)
	assert.Len(t, span, MaxIntervals)
	assert.False(t, Fits([]string{"10:00", "10:30"}, "10:00", math.MaxInt))
}

func TestForDurationSingleIntervalReturnsInput(t *testing.T) {
	open := []string{"10:00", "11:30", "16:00"}
	got := ForDuration(30, open)
	assert.Equal(t, open, got)

	got[0] = "mutated"
	assert.Equal(t, "10:00", open[0], "result must not alias the input")
}

func TestForDurationRespectsGaps(t *testing.T) {
	// 10:30 was booked, so 10:00 cannot host an hour even though 11:00 sits
	// right after it in the slice.
	open := []string{"10:00", "11:00", "11:30", "16:00", "16:30"}
	assert.Equal(t, []string{"11:00", "16:00"}, ForDuration(60, open))
}

func TestForDurationUnsortedInput(t *testing.T) {
	open := []string{"16:30", "10:30", "16:00", "10:00"}
	assert.Equal(t, []string{"16:00", "10:00"}, ForDuration(60, open))
}

func TestForDurationLongMeeting(t *testing.T) {
	open := []string{"10:00", "10:30", "11:00", "11:30", "13:00", "13:30", "14:00"}
	assert.Equal(t, []string{"10:00", "10:30", "13:00"}, ForDuration(90, open))
	assert.Equal(t, []string{"10:00"}, ForDuration(120, open))
}

func TestForDurationEmpty(t *testing.T) {
	assert.Empty(t, ForDuration(60, []string{"10:00", "11:00"}))
	assert.Empty(t, ForDuration(60, nil))
}

// Every returned start has its span present, and every start outside the
// result is missing at least one interval.
func TestForDurationSoundAndComplete(t *testing.T) {
	open := []string{"10:00", "10:30", "11:30", "12:00", "12:30", "14:00", "15:30", "16:00"}
	for _, minutes := range []int{30, 60, 90, 120} {
		got := ForDuration(minutes, open)
		inResult := toSet(got)
		for _, start := range open {
			spanOpen := true
			for _, entry := range Span(MustTimeOfDay(start), minutes) {
				if _, ok := toSet(open)[entry]; !ok {
					spanOpen = false
				}
			}
			_, returned := inResult[start]
			assert.Equal(t, spanOpen, returned, "start %s duration %d", start, minutes)
		}
	}
}

func TestFits(t *testing.T) {
	open := []string{"10:00", "10:30", "16:30"}
	assert.True(t, Fits(open, "10:00", 60))
	assert.False(t, Fits(open, "10:30", 60))
	assert.True(t, Fits(open, "16:30", 30))
	assert.False(t, Fits(open, "bogus", 30))
	assert.False(t, Fits([]string{"23:30", "00:00"}, "23:30", 60))
}

func TestSpan(t *testing.T) {
	assert.Equal(t, []string{"09:00", "09:30"}, Span(MustTimeOfDay("09:00"), 60))
	assert.Equal(t, []string{"14:00"}, Span(MustTimeOfDay("14:00"), 30))
}

func TestMeetingTypeLocation(t *testing.T) {
	assert.True(t, RequiresInvitationLink("online"))
	assert.False(t, RequiresAddress("online"))
	assert.True(t, RequiresAddress("personal"))
	assert.True(t, RequiresAddress("in-person"))
	assert.False(t, RequiresInvitationLink("personal"))
	assert.False(t, RequiresAddress("webinar"))
}

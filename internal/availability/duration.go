package availability

import "strings"

// Meeting types understood by the scheduler.
const (
	MeetingOnline   = "online"
	MeetingPersonal = "personal"
	MeetingInPerson = "inperson"
)

var meetingDurations = map[string]int{
	MeetingOnline:   BaseInterval,
	MeetingPersonal: 2 * BaseInterval,
	MeetingInPerson: 2 * BaseInterval,
}

// NormalizeMeetingType lowercases the value and folds spelling variants such
// as "in-person" and "in person" onto the canonical names.
func NormalizeMeetingType(meetingType string) string {
	v := strings.ToLower(strings.TrimSpace(meetingType))
	v = strings.NewReplacer("-", "", " ", "", "_", "").Replace(v)
	return v
}

// DurationFor resolves the expected duration of a meeting type in minutes.
// Unknown or empty types get the base interval.
func DurationFor(meetingType string) int {
	if d, ok := meetingDurations[NormalizeMeetingType(meetingType)]; ok {
		return d
	}
	return BaseInterval
}

// RequiresAddress reports whether the meeting happens at a physical location.
func RequiresAddress(meetingType string) bool {
	switch NormalizeMeetingType(meetingType) {
	case MeetingPersonal, MeetingInPerson:
		return true
	}
	return false
}

// RequiresInvitationLink reports whether the meeting happens online.
func RequiresInvitationLink(meetingType string) bool {
	return NormalizeMeetingType(meetingType) == MeetingOnline
}

// MaxIntervals is the number of base intervals in a day.
const MaxIntervals = minutesPerDay / BaseInterval

// Intervals is the number of base intervals a duration occupies, rounded up
// and capped at one day.
func Intervals(minutes int) int {
	if minutes <= BaseInterval {
		return 1
	}
	if minutes >= minutesPerDay {
		return MaxIntervals
	}
	return (minutes + BaseInterval - 1) / BaseInterval
}

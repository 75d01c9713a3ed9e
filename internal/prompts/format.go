package prompts

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime renders "16:00" as "4:00 p.m." and "09:30" as "9:30 a.m.".
// Values that are not HH:MM come back unchanged.
func FormatTime(hhmm string) string {
	hourStr, minute, ok := strings.Cut(hhmm, ":")
	if !ok {
		return hhmm
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return hhmm
	}
	switch {
	case hour > 12:
		return fmt.Sprintf("%d:%s p.m.", hour-12, minute)
	case hour == 12:
		return fmt.Sprintf("12:%s p.m.", minute)
	case hour == 0:
		return fmt.Sprintf("12:%s a.m.", minute)
	}
	return fmt.Sprintf("%d:%s a.m.", hour, minute)
}

// AvailabilitySummary lists up to three options in a sentence. More than
// three options are introduced as "plenty of availability".
func AvailabilitySummary(options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return "We have availability at " + FormatTime(options[0])
	case 2:
		return fmt.Sprintf("We have availabilities at %s and %s", FormatTime(options[0]), FormatTime(options[1]))
	}
	prefix := "We have availabilities at "
	if len(options) > 3 {
		prefix = "We have plenty of availability, including "
	}
	return fmt.Sprintf("%s%s, %s and %s", prefix, FormatTime(options[0]), FormatTime(options[1]), FormatTime(options[2]))
}

package availability

// Span lists the grid entries a meeting of the given duration occupies when it
// starts at start. The first entry is start itself.
func Span(start TimeOfDay, minutes int) []string {
	n := Intervals(minutes)
	span := make([]string, 0, n)
	for i := 0; i < n; i++ {
		span = append(span, start.Add(i*BaseInterval).String())
	}
	return span
}

// Fits reports whether every interval spanned from start is present in open.
func Fits(open []string, start string, minutes int) bool {
	return fits(toSet(open), start, minutes)
}

// ForDuration narrows a day's open entries to the start times that can host
// the whole duration contiguously. Presence is checked by value, so gaps left
// by earlier bookings are respected even when neighbours are adjacent in the
// slice.
func ForDuration(minutes int, open []string) []string {
	if Intervals(minutes) == 1 {
		return append([]string{}, open...)
	}
	set := toSet(open)
	out := make([]string, 0, len(open))
	for _, start := range open {
		if fits(set, start, minutes) {
			out = append(out, start)
		}
	}
	return out
}

func fits(set map[string]struct{}, start string, minutes int) bool {
	t, err := ParseTimeOfDay(start)
	if err != nil {
		return false
	}
	if Intervals(minutes) > 1 && t.Add((Intervals(minutes)-1)*BaseInterval) < t {
		// span would wrap past midnight
		return false
	}
	for _, entry := range Span(t, minutes) {
		if _, ok := set[entry]; !ok {
			return false
		}
	}
	return true
}

func toSet(entries []string) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e] = struct{}{}
	}
	return set
}

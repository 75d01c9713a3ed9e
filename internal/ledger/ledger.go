// Package ledger tracks which time slots remain bookable per date for the
// lifetime of one conversation. The ledger travels between turns inside the
// session attributes, so every turn decodes a snapshot, works on it and
// encodes the result.
package ledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wolfman30/meeting-scheduler/internal/availability"
)

// SessionKey is the session attribute carrying the encoded ledger.
const SessionKey = "bookingMap"

// Ledger maps a YYYY-MM-DD date to its ordered open HH:MM entries.
type Ledger map[string][]string

// Decode parses the bookingMap session attribute. An empty value is a fresh
// ledger.
func Decode(raw string) (Ledger, error) {
	l := Ledger{}
	if strings.TrimSpace(raw) == "" {
		return l, nil
	}
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("ledger: decode %s: %w", SessionKey, err)
	}
	for date, entries := range l {
		if entries == nil {
			l[date] = []string{}
		}
	}
	return l, nil
}

// Encode renders the ledger for the bookingMap session attribute. Dates are
// emitted in sorted order.
func (l Ledger) Encode() (string, error) {
	if l == nil {
		l = Ledger{}
	}
	data, err := json.Marshal(map[string][]string(l))
	if err != nil {
		return "", fmt.Errorf("ledger: encode %s: %w", SessionKey, err)
	}
	return string(data), nil
}

// Clone returns a deep copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for date, entries := range l {
		out[date] = append([]string{}, entries...)
	}
	return out
}

// Entry returns a copy of the open entries for date.
func (l Ledger) Entry(date string) ([]string, bool) {
	entries, ok := l[date]
	if !ok {
		return nil, false
	}
	return append([]string{}, entries...), true
}

// GetOrCreate returns the open entries for date, seeding them from gen the
// first time the date is seen. The second return value reports whether the
// entry was seeded by this call.
func (l Ledger) GetOrCreate(date string, gen availability.Generator) ([]string, bool, error) {
	if entries, ok := l.Entry(date); ok {
		return entries, false, nil
	}
	d, err := availability.ParseDate(date)
	if err != nil {
		return nil, false, fmt.Errorf("ledger: seed %s: %w", date, err)
	}
	seeded := gen.Availabilities(d)
	if seeded == nil {
		seeded = []string{}
	}
	l[date] = append([]string{}, seeded...)
	return append([]string{}, seeded...), true, nil
}

// IsOpen reports whether every interval of a meeting starting at start is
// still open on date.
func (l Ledger) IsOpen(date, start string, minutes int) bool {
	entries, ok := l[date]
	if !ok {
		return false
	}
	return availability.Fits(entries, start, minutes)
}

// Commit removes the intervals consumed by a booking. Only entries inside the
// booked span are touched, so committing twice leaves the rest of the day
// alone. ok is false when the date has no entry at all.
func (l Ledger) Commit(date, start string, minutes int) (removed int, ok bool) {
	entries, ok := l[date]
	if !ok {
		return 0, false
	}
	t, err := availability.ParseTimeOfDay(start)
	if err != nil {
		return 0, true
	}
	consumed := map[string]struct{}{}
	for _, entry := range availability.Span(t, minutes) {
		consumed[entry] = struct{}{}
	}
	kept := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, hit := consumed[entry]; hit {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	l[date] = kept
	return removed, true
}

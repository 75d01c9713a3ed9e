package scheduling

import (
	"github.com/wolfman30/meeting-scheduler/internal/availability"
	"github.com/wolfman30/meeting-scheduler/internal/prompts"
)

// fulfill commits the booking and closes the conversation. A date with no
// ledger entry is tolerated: the handler may be configured for fulfillment
// only, in which case the dialog never seeded it.
func (s *Scheduler) fulfill(st *turnState) Directive {
	date := st.slots.Get(SlotDate)
	start := st.slots.Get(SlotTime)
	if date == "" || start == "" {
		s.logger.Warn("fulfillment without date or time", "user_id", st.turn.UserID, "date", date, "time", start)
		d := st.base(Close)
		d.Rule = "fulfill_incomplete"
		d.FulfillmentState = Failed
		d.Prompt = prompts.New(prompts.BookingIncomplete)
		return d
	}

	minutes := st.durationMinutes()
	removed, ok := st.ledger.Commit(date, start, minutes)
	switch {
	case !ok:
		s.observer.ObserveMissingLedgerEntry()
		s.logger.Debug("availabilities were not initialized at fulfillment time", "date", date)
	case removed < availability.Intervals(minutes):
		s.logger.Warn("booked span was not fully open", "date", date, "time", start, "minutes", minutes, "removed", removed)
	}
	s.observer.ObserveBooking(st.meetingType(), availability.Intervals(minutes))

	d := st.base(Close)
	d.Rule = "fulfill"
	d.FulfillmentState = Fulfilled
	d.Prompt = prompts.New(prompts.Booked, "Time", start, "Date", date)
	d.Booking = &Booking{
		Person:      st.slots.Get(SlotPerson),
		MeetingType: st.meetingType(),
		Date:        date,
		Time:        start,
		Minutes:     minutes,
	}
	return d
}

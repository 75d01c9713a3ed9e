package scheduling

import (
	"github.com/wolfman30/meeting-scheduler/internal/availability"
	"github.com/wolfman30/meeting-scheduler/internal/prompts"
)

// rule is one entry of the ordered decision list.
type rule struct {
	name string
	when func(*turnState) (bool, error)
	then func(*turnState) Directive
}

// dialogRules is evaluated top to bottom, first match wins.
var dialogRules = []rule{
	{name: "invalid_slot", when: hasViolation, then: reelicitViolation},
	{name: "person_missing", when: missing(SlotPerson), then: askFor(SlotPerson, prompts.AskPerson)},
	{name: "confirmation_denied", when: confirmationDenied, then: askOtherDate},
	{name: "meeting_type_missing", when: missing(SlotMeetingType), then: askFor(SlotMeetingType, prompts.AskMeetingType)},
	{name: "date_missing", when: missing(SlotDate), then: askDate},
	{name: "no_availability", when: noAvailability, then: askDifferentDate},
	{name: "confirm_only_option", when: needsTime(func(n int) bool { return n == 1 }), then: confirmOnlyOption},
	{name: "pick_time", when: needsTime(func(n int) bool { return n > 1 }), then: pickTime},
	{name: "invitation_link_missing", when: invitationLinkMissing, then: askFor(SlotInvitationLink, prompts.AskInvitation)},
	{name: "address_missing", when: addressMissing, then: askAddress},
	{name: "phone_missing", when: phoneMissing, then: askFor(SlotPhone, prompts.AskPhone)},
	{name: "delegate", when: always, then: (*turnState).delegate},
}

func always(*turnState) (bool, error) { return true, nil }

func hasViolation(st *turnState) (bool, error) {
	return st.violation != nil, nil
}

func reelicitViolation(st *turnState) Directive {
	v := st.violation
	st.s.observer.ObserveValidationFailure(v.Slot)
	st.s.logger.Debug("slot failed validation", "slot", v.Slot, "value", st.slots.Get(v.Slot), "prompt", v.Prompt.ID)
	st.slots.Clear(v.Slot)
	return st.elicit(v.Slot, v.Prompt)
}

func confirmationDenied(st *turnState) (bool, error) {
	return st.turn.ConfirmationStatus == ConfirmationDenied, nil
}

func askOtherDate(st *turnState) Directive {
	st.slots.Clear(SlotDate, SlotTime)
	return st.elicit(SlotDate, prompts.New(prompts.AskOtherDate))
}

func missing(slot string) func(*turnState) (bool, error) {
	return func(st *turnState) (bool, error) {
		return !st.slots.Has(slot), nil
	}
}

func askFor(slot string, id prompts.ID) func(*turnState) Directive {
	return func(st *turnState) Directive {
		return st.elicit(slot, prompts.New(id))
	}
}

func askDate(st *turnState) Directive {
	return st.elicit(SlotDate, prompts.New(prompts.AskDate, "MeetingType", st.slots.Get(SlotMeetingType)))
}

func noAvailability(st *turnState) (bool, error) {
	view, err := st.availability()
	if err != nil {
		return false, err
	}
	return len(view.options) == 0, nil
}

func askDifferentDate(st *turnState) Directive {
	st.slots.Clear(SlotDate, SlotTime)
	return st.elicit(SlotDate, prompts.New(prompts.NoAvailability))
}

// needsTime holds when no bookable Time has been accepted yet and the number
// of compatible start times satisfies count.
func needsTime(count func(int) bool) func(*turnState) (bool, error) {
	return func(st *turnState) (bool, error) {
		view, err := st.availability()
		if err != nil {
			return false, err
		}
		return !view.timeOpen && count(len(view.options)), nil
	}
}

// timeRejected reports whether the user named a time that is not bookable.
func timeRejected(st *turnState) bool {
	return st.slots.Has(SlotTime) && !st.avail.timeOpen
}

func confirmOnlyOption(st *turnState) Directive {
	only := st.avail.options[0]
	date := st.slots.Get(SlotDate)
	rejected := timeRejected(st)
	st.slots[SlotTime] = only

	d := st.base(ConfirmIntent)
	d.Prompt = prompts.New(prompts.ConfirmOnlySlot, "Date", date, "Time", only, "Unavailable", rejected)
	d.Card = &prompts.Card{Kind: prompts.CardConfirm, Date: date, Options: []string{only}}
	return d
}

func pickTime(st *turnState) Directive {
	date := st.slots.Get(SlotDate)
	rejected := timeRejected(st)
	options := append([]string{}, st.avail.options...)
	st.slots.Clear(SlotTime)

	d := st.elicit(SlotTime, prompts.New(prompts.PickTime, "Date", date, "Options", options, "Unavailable", rejected))
	d.Card = &prompts.Card{Kind: prompts.CardTimeOptions, Date: date, Options: options}
	return d
}

func invitationLinkMissing(st *turnState) (bool, error) {
	return availability.RequiresInvitationLink(st.meetingType()) && !st.slots.Has(SlotInvitationLink), nil
}

func addressMissing(st *turnState) (bool, error) {
	return availability.RequiresAddress(st.meetingType()) && !st.slots.Has(SlotAddress), nil
}

func askAddress(st *turnState) Directive {
	return st.elicit(SlotAddress, prompts.New(prompts.AskAddress, "MeetingType", st.slots.Get(SlotMeetingType)))
}

func phoneMissing(st *turnState) (bool, error) {
	located := st.slots.Has(SlotInvitationLink) || st.slots.Has(SlotAddress)
	return located && !st.slots.Has(SlotPhone), nil
}

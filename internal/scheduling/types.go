package scheduling

import (
	"strings"

	"github.com/wolfman30/meeting-scheduler/internal/ledger"
	"github.com/wolfman30/meeting-scheduler/internal/prompts"
)

// IntentScheduleMeeting is the only intent this handler fulfils.
const IntentScheduleMeeting = "ScheduleMeeting"

// Slot names as configured on the bot.
const (
	SlotPerson         = "Person"
	SlotMeetingType    = "MeetingType"
	SlotDate           = "Date"
	SlotTime           = "Time"
	SlotDuration       = "Duration"
	SlotAddress        = "Address"
	SlotInvitationLink = "InvitationLink"
	SlotPhone          = "Phone"
)

// SlotNames lists every slot of the ScheduleMeeting intent.
var SlotNames = []string{
	SlotPerson, SlotMeetingType, SlotDate, SlotTime,
	SlotDuration, SlotAddress, SlotInvitationLink, SlotPhone,
}

// SlotSet holds slot values by name. An empty value means unset.
type SlotSet map[string]string

// Get returns the trimmed value of a slot.
func (s SlotSet) Get(name string) string {
	return strings.TrimSpace(s[name])
}

// Has reports whether a slot carries a value.
func (s SlotSet) Has(name string) bool {
	return s.Get(name) != ""
}

// Clear unsets the named slots while keeping their keys.
func (s SlotSet) Clear(names ...string) {
	for _, n := range names {
		s[n] = ""
	}
}

// Clone copies the set.
func (s SlotSet) Clone() SlotSet {
	out := make(SlotSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Source tells validation-time calls apart from fulfillment-time calls.
type Source string

const (
	SourceDialog      Source = "DialogCodeHook"
	SourceFulfillment Source = "FulfillmentCodeHook"
)

// Confirmation statuses reported by the platform after a ConfirmIntent.
const (
	ConfirmationNone      = "None"
	ConfirmationConfirmed = "Confirmed"
	ConfirmationDenied    = "Denied"
)

// Turn is one inbound request, already decoded from the transport envelope.
type Turn struct {
	UserID             string
	IntentName         string
	Source             Source
	ConfirmationStatus string
	Slots              SlotSet
	Ledger             ledger.Ledger
}

// DirectiveKind is the dialog action handed back to the platform.
type DirectiveKind string

const (
	ElicitSlot    DirectiveKind = "ElicitSlot"
	ConfirmIntent DirectiveKind = "ConfirmIntent"
	Delegate      DirectiveKind = "Delegate"
	Close         DirectiveKind = "Close"
)

// FulfillmentState accompanies a Close directive.
type FulfillmentState string

const (
	Fulfilled FulfillmentState = "Fulfilled"
	Failed    FulfillmentState = "Failed"
)

// Booking describes a committed meeting.
type Booking struct {
	Person      string
	MeetingType string
	Date        string
	Time        string
	Minutes     int
}

// Directive is the scheduler's decision for a turn. Ledger is the output
// snapshot that must be written back to the session.
type Directive struct {
	Kind             DirectiveKind
	Rule             string
	IntentName       string
	Slots            SlotSet
	SlotToElicit     string
	Prompt           prompts.Prompt
	Card             *prompts.Card
	FulfillmentState FulfillmentState
	Ledger           ledger.Ledger
	Booking          *Booking
}

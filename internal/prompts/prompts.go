package prompts

// ID names a user-facing prompt. The scheduling core only picks IDs and
// supplies data; wording lives in the catalog.
type ID string

const (
	AskPerson         ID = "ask_person"
	AskMeetingType    ID = "ask_meeting_type"
	AskDate           ID = "ask_date"
	AskOtherDate      ID = "ask_other_date"
	NoAvailability    ID = "no_availability"
	ConfirmOnlySlot   ID = "confirm_only_slot"
	PickTime          ID = "pick_time"
	AskInvitation     ID = "ask_invitation_link"
	AskAddress        ID = "ask_address"
	AskPhone          ID = "ask_phone"
	Booked            ID = "booked"
	BookingIncomplete ID = "booking_incomplete"

	InvalidDuration    ID = "invalid_duration"
	InvalidMeetingType ID = "invalid_meeting_type"
	InvalidTime        ID = "invalid_time"
	OutsideHours       ID = "outside_hours"
	OffGrid            ID = "off_grid"
	InvalidDate        ID = "invalid_date"
	TooSoon            ID = "too_soon"
	Weekend            ID = "weekend"
)

// Prompt is a prompt ID plus the values its template refers to.
type Prompt struct {
	ID   ID
	Data map[string]any
}

// New builds a prompt from alternating key/value pairs.
func New(id ID, kv ...any) Prompt {
	data := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		data[key] = kv[i+1]
	}
	return Prompt{ID: id, Data: data}
}

var defaultTemplates = map[ID]string{
	AskPerson:         "Who is gonna be that with?",
	AskMeetingType:    "What type of meeting would you like to schedule?",
	AskDate:           "When would you like to schedule your {{.MeetingType}}?",
	AskOtherDate:      "Okay, what other day works for you?",
	NoAvailability:    "There is not any availability on that date, is there another day which works for you?",
	ConfirmOnlySlot:   "{{if .Unavailable}}The time you requested is not available. {{else}}What time on {{.Date}} works for you? {{end}}{{formatTime .Time}} is our only availability, does that work for you?",
	PickTime:          "{{if .Unavailable}}The time you requested is not available. {{else}}What time on {{.Date}} works for you? {{end}}{{summary .Options}}",
	AskInvitation:     "Can you paste your invitation link in here, please?",
	AskAddress:        "Where will the {{.MeetingType}} take place?",
	AskPhone:          "Can you leave your contact phone number here, please?",
	Booked:            "Okay, I have booked your meeting. See you at {{formatTime .Time}} on {{.Date}}",
	BookingIncomplete: "Sorry, I could not book that meeting because the date or time is missing. Please start again.",

	InvalidDuration:    "I did not recognize that, what is the expected duration of the meeting?",
	InvalidMeetingType: "We schedule online, personal or in-person meetings. Which one would you like?",
	InvalidTime:        "I did not recognize that, what time would you like to book your meeting?",
	OutsideHours:       "Our business hours are {{formatTime .Open}} to {{formatTime .Close}}. What time works best for you?",
	OffGrid:            "We schedule meetings every half hour, what time works best for you?",
	InvalidDate:        "I did not understand that, what date works best for you?",
	TooSoon:            "Meetings must be scheduled a day in advance. Can you try a different date?",
	Weekend:            "Our office is not open on the weekends, can you provide a work day?",
}

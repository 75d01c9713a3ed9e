// Package scheduling decides, turn by turn, what the assistant asks next and
// commits a booking once the meeting is fully specified.
package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wolfman30/meeting-scheduler/internal/availability"
	"github.com/wolfman30/meeting-scheduler/internal/ledger"
	"github.com/wolfman30/meeting-scheduler/internal/prompts"
	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

// ErrUnknownIntent is returned for intents this handler does not serve. It is
// fatal for the turn.
var ErrUnknownIntent = errors.New("scheduling: intent not supported")

// Observer receives domain events worth counting.
type Observer interface {
	ObserveValidationFailure(slot string)
	ObserveLedgerSeeded()
	ObserveBooking(meetingType string, intervals int)
	ObserveMissingLedgerEntry()
}

type noopObserver struct{}

func (noopObserver) ObserveValidationFailure(string) {}
func (noopObserver) ObserveLedgerSeeded()            {}
func (noopObserver) ObserveBooking(string, int)      {}
func (noopObserver) ObserveMissingLedgerEntry()      {}

// Options configures a Scheduler. Zero values fall back to business-hours
// availability between 10:00 and 17:00 in UTC.
type Options struct {
	Generator availability.Generator
	Window    availability.Window
	Location  *time.Location
	Now       func() time.Time
	Logger    *logging.Logger
	Observer  Observer
}

// Scheduler runs the dialog state machine and the fulfillment committer. It
// holds no session state; each Turn carries its own ledger snapshot.
type Scheduler struct {
	generator availability.Generator
	window    availability.Window
	location  *time.Location
	now       func() time.Time
	logger    *logging.Logger
	observer  Observer
}

// New builds a scheduler.
func New(opts Options) *Scheduler {
	s := &Scheduler{
		generator: opts.Generator,
		window:    opts.Window,
		location:  opts.Location,
		now:       opts.Now,
		logger:    opts.Logger,
		observer:  opts.Observer,
	}
	if s.window.Close <= s.window.Open {
		s.window = availability.DefaultWindow
	}
	if s.generator == nil {
		s.generator = availability.NewBusinessHours(s.window)
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}
	if s.observer == nil {
		s.observer = noopObserver{}
	}
	return s
}

// Window returns the business window the scheduler validates against.
func (s *Scheduler) Window() availability.Window {
	return s.window
}

// Handle processes one turn to completion.
func (s *Scheduler) Handle(_ context.Context, turn Turn) (Directive, error) {
	s.logger.Debug("dispatch", "user_id", turn.UserID, "intent", turn.IntentName, "source", turn.Source)

	if turn.IntentName != IntentScheduleMeeting {
		return Directive{}, fmt.Errorf("%w: %q", ErrUnknownIntent, turn.IntentName)
	}

	st := &turnState{
		s:      s,
		turn:   turn,
		slots:  turn.Slots.Clone(),
		ledger: turn.Ledger.Clone(),
	}
	if st.slots == nil {
		st.slots = SlotSet{}
	}

	if turn.Source == SourceFulfillment {
		return s.fulfill(st), nil
	}
	return s.decide(st)
}

// decide walks the dialog rules top to bottom; the first rule whose predicate
// holds produces the directive.
func (s *Scheduler) decide(st *turnState) (Directive, error) {
	st.violation = s.Validate(st.slots)
	for _, r := range dialogRules {
		ok, err := r.when(st)
		if err != nil {
			return Directive{}, fmt.Errorf("scheduling: rule %s: %w", r.name, err)
		}
		if !ok {
			continue
		}
		d := r.then(st)
		d.Rule = r.name
		s.logger.Debug("dialog rule matched", "rule", r.name, "directive", d.Kind, "slot", d.SlotToElicit)
		return d, nil
	}
	// the last rule always matches
	return st.delegate(), nil
}

// turnState is the working copy of a turn. Availability is resolved lazily so
// the ledger is only seeded once the dialog gets as far as the date.
type turnState struct {
	s         *Scheduler
	turn      Turn
	slots     SlotSet
	ledger    ledger.Ledger
	violation *ValidationError
	avail     *dayAvailability
}

type dayAvailability struct {
	minutes  int
	options  []string
	timeOpen bool
}

func (st *turnState) meetingType() string {
	return availability.NormalizeMeetingType(st.slots.Get(SlotMeetingType))
}

// durationMinutes is the Duration slot when set and valid, otherwise the
// meeting type's default. Fulfillment turns skip validation, so the bound
// is applied here as well.
func (st *turnState) durationMinutes() int {
	if raw := st.slots.Get(SlotDuration); raw != "" {
		if m, err := ParseDuration(raw); err == nil && st.s.durationAllowed(m) {
			return m
		}
	}
	return availability.DurationFor(st.meetingType())
}

func (st *turnState) availability() (*dayAvailability, error) {
	if st.avail != nil {
		return st.avail, nil
	}
	date := st.slots.Get(SlotDate)
	open, seeded, err := st.ledger.GetOrCreate(date, st.s.generator)
	if err != nil {
		return nil, err
	}
	if seeded {
		st.s.observer.ObserveLedgerSeeded()
		st.s.logger.Debug("seeded availabilities", "date", date, "open", len(open))
	}
	minutes := st.durationMinutes()
	view := &dayAvailability{
		minutes: minutes,
		options: availability.ForDuration(minutes, open),
	}
	if t := st.slots.Get(SlotTime); t != "" {
		view.timeOpen = st.ledger.IsOpen(date, t, minutes)
	}
	st.avail = view
	return view, nil
}

func (st *turnState) base(kind DirectiveKind) Directive {
	return Directive{
		Kind:       kind,
		IntentName: st.turn.IntentName,
		Slots:      st.slots,
		Ledger:     st.ledger,
	}
}

func (st *turnState) elicit(slot string, p prompts.Prompt) Directive {
	d := st.base(ElicitSlot)
	d.SlotToElicit = slot
	d.Prompt = p
	return d
}

func (st *turnState) delegate() Directive {
	return st.base(Delegate)
}

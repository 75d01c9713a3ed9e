package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wolfman30/meeting-scheduler/internal/availability"
	"github.com/wolfman30/meeting-scheduler/internal/ledger"
	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

// fixedNow is a Thursday; 2021-06-01 is the following Tuesday week.
var fixedNow = time.Date(2021, 5, 20, 12, 0, 0, 0, time.UTC)

type recordingObserver struct {
	mu         sync.Mutex
	violations []string
	seeded     int
	bookings   []string
	missing    int
}

func (o *recordingObserver) ObserveValidationFailure(slot string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.violations = append(o.violations, slot)
}

func (o *recordingObserver) ObserveLedgerSeeded() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seeded++
}

func (o *recordingObserver) ObserveBooking(meetingType string, _ int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.bookings = append(o.bookings, meetingType)
}

func (o *recordingObserver) ObserveMissingLedgerEntry() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.missing++
}

type countingGenerator struct {
	calls int
	out   []string
}

func (g *countingGenerator) Availabilities(time.Time) []string {
	g.calls++
	return append([]string{}, g.out...)
}

func newTestScheduler(t *testing.T, gen availability.Generator) (*Scheduler, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	s := New(Options{
		Generator: gen,
		Window:    availability.DefaultWindow,
		Now:       func() time.Time { return fixedNow },
		Logger:    logging.New("error"),
		Observer:  obs,
	})
	return s, obs
}

func dialogTurn(slots SlotSet, l ledger.Ledger) Turn {
	return Turn{
		UserID:     "user-1",
		IntentName: IntentScheduleMeeting,
		Source:     SourceDialog,
		Slots:      slots,
		Ledger:     l,
	}
}

func fulfillmentTurn(slots SlotSet, l ledger.Ledger) Turn {
	turn := dialogTurn(slots, l)
	turn.Source = SourceFulfillment
	return turn
}

func handle(t *testing.T, s *Scheduler, turn Turn) Directive {
	t.Helper()
	d, err := s.Handle(context.Background(), turn)
	require.NoError(t, err)
	return d
}

// fullSlots returns every slot set to a value that passes validation.
func fullSlots() SlotSet {
	return SlotSet{
		SlotPerson:         "Alice",
		SlotMeetingType:    "online",
		SlotDate:           "2021-06-01",
		SlotTime:           "10:00",
		SlotDuration:       "",
		SlotAddress:        "",
		SlotInvitationLink: "https://meet.example.com/abc",
		SlotPhone:          "+420123456789",
	}
}

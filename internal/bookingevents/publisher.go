// Package bookingevents announces committed meetings to downstream consumers.
package bookingevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

// EventMeetingBooked is the type of the event emitted on fulfillment.
const EventMeetingBooked = "meeting.booked"

// MeetingBooked is the wire form of a committed meeting.
type MeetingBooked struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	UserID          string `json:"userId"`
	Person          string `json:"person"`
	MeetingType     string `json:"meetingType"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	OccurredAt      string `json:"occurredAt"`
}

// Publisher serializes booking events onto a queue.
type Publisher struct {
	queue  Queue
	logger *logging.Logger
	now    func() time.Time
}

// NewPublisher creates a queue-backed publisher.
func NewPublisher(queue Queue, logger *logging.Logger) *Publisher {
	if queue == nil {
		panic("bookingevents: queue cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Publisher{
		queue:  queue,
		logger: logger,
		now:    time.Now,
	}
}

// PublishBooked emits a meeting.booked event. ID, Type and OccurredAt are
// filled when empty.
func (p *Publisher) PublishBooked(ctx context.Context, evt MeetingBooked) error {
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	evt.Type = EventMeetingBooked
	if evt.OccurredAt == "" {
		evt.OccurredAt = p.now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("bookingevents: failed to encode event: %w", err)
	}
	if err := p.queue.Send(ctx, string(body)); err != nil {
		return fmt.Errorf("bookingevents: failed to publish event: %w", err)
	}

	p.logger.Debug("booking event published", "event_id", evt.ID, "date", evt.Date, "time", evt.Time)
	return nil
}

// Package turnlog keeps a short-lived transcript of dialog turns per session.
package turnlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL bounds how long a transcript survives. It matches the session
// lifetime of the bot.
const DefaultTTL = 24 * time.Hour

// Entry is one decided turn.
type Entry struct {
	ID               string            `json:"id" dynamodbav:"entryId"`
	SessionID        string            `json:"sessionId" dynamodbav:"sessionId"`
	Source           string            `json:"source" dynamodbav:"source"`
	Directive        string            `json:"directive" dynamodbav:"directive"`
	Rule             string            `json:"rule,omitempty" dynamodbav:"rule,omitempty"`
	SlotToElicit     string            `json:"slotToElicit,omitempty" dynamodbav:"slotToElicit,omitempty"`
	PromptID         string            `json:"promptId,omitempty" dynamodbav:"promptId,omitempty"`
	FulfillmentState string            `json:"fulfillmentState,omitempty" dynamodbav:"fulfillmentState,omitempty"`
	Slots            map[string]string `json:"slots,omitempty" dynamodbav:"slots,omitempty"`
	RecordedAt       string            `json:"recordedAt" dynamodbav:"recordedAt"`
	ExpiresAt        int64             `json:"-" dynamodbav:"expiresAt,omitempty"`
}

// Recorder persists turn entries.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }

// stamp fills the ID and timestamp when the caller left them empty.
func stamp(entry Entry, now time.Time) Entry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.RecordedAt == "" {
		entry.RecordedAt = now.UTC().Format(time.RFC3339Nano)
	}
	return entry
}

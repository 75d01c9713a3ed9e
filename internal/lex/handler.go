// Package lex adapts the Lex V1 code-hook envelope to the scheduler.
package lex

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/meeting-scheduler/internal/bookingevents"
	"github.com/wolfman30/meeting-scheduler/internal/ledger"
	"github.com/wolfman30/meeting-scheduler/internal/observability/metrics"
	"github.com/wolfman30/meeting-scheduler/internal/prompts"
	"github.com/wolfman30/meeting-scheduler/internal/scheduling"
	"github.com/wolfman30/meeting-scheduler/internal/turnlog"
	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

// FormattedTimeKey is the session attribute holding the spoken form of the
// chosen time.
const FormattedTimeKey = "formattedTime"

const (
	contentTypePlainText = "PlainText"
	genericCardType      = "application/vnd.amazonaws.card.generic"
)

// BookingPublisher announces committed meetings.
type BookingPublisher interface {
	PublishBooked(ctx context.Context, evt bookingevents.MeetingBooked) error
}

// Options wires the optional collaborators of a Handler.
type Options struct {
	Catalog   *prompts.Catalog
	Recorder  turnlog.Recorder
	Publisher BookingPublisher
	Metrics   *metrics.DialogMetrics
	Logger    *logging.Logger
	Tracer    trace.Tracer
}

// Handler serves one Lex code-hook invocation at a time.
type Handler struct {
	scheduler *scheduling.Scheduler
	catalog   *prompts.Catalog
	recorder  turnlog.Recorder
	publisher BookingPublisher
	metrics   *metrics.DialogMetrics
	logger    *logging.Logger
	tracer    trace.Tracer
}

// NewHandler builds a handler around the scheduler.
func NewHandler(scheduler *scheduling.Scheduler, opts Options) *Handler {
	if scheduler == nil {
		panic("lex: scheduler cannot be nil")
	}
	h := &Handler{
		scheduler: scheduler,
		catalog:   opts.Catalog,
		recorder:  opts.Recorder,
		publisher: opts.Publisher,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		tracer:    opts.Tracer,
	}
	if h.catalog == nil {
		h.catalog = prompts.MustCatalog()
	}
	if h.recorder == nil {
		h.recorder = turnlog.Nop{}
	}
	if h.logger == nil {
		h.logger = logging.Default()
	}
	if h.tracer == nil {
		h.tracer = otel.Tracer("meetings.internal.lex")
	}
	return h
}

// Handle decides the next dialog action for evt.
func (h *Handler) Handle(ctx context.Context, evt events.LexEvent) (events.LexResponse, error) {
	started := time.Now()
	ctx, span := h.tracer.Start(ctx, "lex.handle")
	defer span.End()

	turn, err := DecodeTurn(evt)
	if err != nil {
		span.RecordError(err)
		return events.LexResponse{}, err
	}
	span.SetAttributes(
		attribute.String("lex.intent", turn.IntentName),
		attribute.String("lex.source", string(turn.Source)),
	)

	directive, err := h.scheduler.Handle(ctx, turn)
	if err != nil {
		span.RecordError(err)
		return events.LexResponse{}, err
	}

	resp, err := h.Encode(evt.SessionAttributes, directive)
	if err != nil {
		span.RecordError(err)
		return events.LexResponse{}, err
	}

	h.record(ctx, turn, directive)
	if directive.Booking != nil {
		h.publish(ctx, turn.UserID, *directive.Booking)
	}

	span.SetAttributes(attribute.String("lex.directive", string(directive.Kind)))
	h.metrics.ObserveTurn(string(turn.Source), string(directive.Kind), directive.Rule, time.Since(started).Seconds())
	return resp, nil
}

// DecodeTurn converts the inbound envelope into a scheduler turn.
func DecodeTurn(evt events.LexEvent) (scheduling.Turn, error) {
	book, err := ledger.Decode(evt.SessionAttributes[ledger.SessionKey])
	if err != nil {
		return scheduling.Turn{}, fmt.Errorf("lex: %w", err)
	}

	turn := scheduling.Turn{
		UserID: evt.UserID,
		Source: scheduling.Source(evt.InvocationSource),
		Slots:  scheduling.SlotSet{},
		Ledger: book,
	}
	if intent := evt.CurrentIntent; intent != nil {
		turn.IntentName = intent.Name
		turn.ConfirmationStatus = intent.ConfirmationStatus
		for name, value := range intent.Slots {
			if value != nil {
				turn.Slots[name] = *value
			} else {
				turn.Slots[name] = ""
			}
		}
	}
	return turn, nil
}

// Encode converts a directive into the outbound envelope. Incoming session
// attributes are carried over; the ledger snapshot replaces bookingMap.
func (h *Handler) Encode(incoming map[string]string, d scheduling.Directive) (events.LexResponse, error) {
	attrs := make(map[string]string, len(incoming)+2)
	for k, v := range incoming {
		attrs[k] = v
	}
	encoded, err := d.Ledger.Encode()
	if err != nil {
		return events.LexResponse{}, fmt.Errorf("lex: %w", err)
	}
	attrs[ledger.SessionKey] = encoded
	if t := d.Slots.Get(scheduling.SlotTime); t != "" {
		attrs[FormattedTimeKey] = prompts.FormatTime(t)
	}

	action := events.LexDialogAction{Type: string(d.Kind)}
	switch d.Kind {
	case scheduling.ElicitSlot, scheduling.ConfirmIntent:
		action.IntentName = d.IntentName
		action.Slots = encodeSlots(d.Slots)
		action.SlotToElicit = d.SlotToElicit
	case scheduling.Delegate:
		action.Slots = encodeSlots(d.Slots)
	case scheduling.Close:
		action.FulfillmentState = string(d.FulfillmentState)
	default:
		return events.LexResponse{}, fmt.Errorf("lex: unknown directive %q", d.Kind)
	}

	if d.Kind != scheduling.Delegate {
		content, err := h.catalog.Render(d.Prompt)
		if err != nil {
			return events.LexResponse{}, fmt.Errorf("lex: %w", err)
		}
		action.Message = map[string]string{"contentType": contentTypePlainText, "content": content}
		if d.Card != nil {
			action.ResponseCard = buildResponseCard(*d.Card)
		}
	}

	return events.LexResponse{SessionAttributes: attrs, DialogAction: action}, nil
}

// encodeSlots emits every known slot, with nil for unset values.
func encodeSlots(slots scheduling.SlotSet) events.Slots {
	out := make(events.Slots, len(scheduling.SlotNames))
	for _, name := range scheduling.SlotNames {
		out[name] = nil
	}
	for name := range slots {
		out[name] = nil
		if v := slots.Get(name); v != "" {
			out[name] = &v
		}
	}
	return out
}

func buildResponseCard(c prompts.Card) *events.LexResponseCard {
	rendered, ok := prompts.BuildCard(c)
	if !ok {
		return nil
	}
	buttons := make([]map[string]string, 0, len(rendered.Buttons))
	for _, b := range rendered.Buttons {
		buttons = append(buttons, map[string]string{"text": b.Text, "value": b.Value})
	}
	return &events.LexResponseCard{
		Version:     1,
		ContentType: genericCardType,
		GenericAttachments: []events.Attachment{{
			Title:    rendered.Title,
			SubTitle: rendered.Subtitle,
			Buttons:  buttons,
		}},
	}
}

func (h *Handler) record(ctx context.Context, turn scheduling.Turn, d scheduling.Directive) {
	entry := turnlog.Entry{
		SessionID:        turn.UserID,
		Source:           string(turn.Source),
		Directive:        string(d.Kind),
		Rule:             d.Rule,
		SlotToElicit:     d.SlotToElicit,
		PromptID:         string(d.Prompt.ID),
		FulfillmentState: string(d.FulfillmentState),
		Slots:            nonEmpty(d.Slots),
	}
	if err := h.recorder.Record(ctx, entry); err != nil {
		h.logger.Warn("turn log write failed", "user_id", turn.UserID, "error", err)
		h.metrics.ObserveSideChannelFailure("turnlog")
	}
}

func (h *Handler) publish(ctx context.Context, userID string, b scheduling.Booking) {
	if h.publisher == nil {
		return
	}
	err := h.publisher.PublishBooked(ctx, bookingevents.MeetingBooked{
		UserID:          userID,
		Person:          b.Person,
		MeetingType:     b.MeetingType,
		Date:            b.Date,
		Time:            b.Time,
		DurationMinutes: b.Minutes,
	})
	if err != nil {
		h.logger.Warn("booking event publish failed", "user_id", userID, "date", b.Date, "time", b.Time, "error", err)
		h.metrics.ObserveSideChannelFailure("bookingevents")
	}
}

func nonEmpty(slots scheduling.SlotSet) map[string]string {
	out := make(map[string]string, len(slots))
	for k := range slots {
		if v := slots.Get(k); v != "" {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

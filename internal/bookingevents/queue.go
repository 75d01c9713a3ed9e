package bookingevents

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
)

// Queue accepts serialized events.
type Queue interface {
	Send(ctx context.Context, body string) error
}

type sqsAPI interface {
	SendMessage(context.Context, *sqs.SendMessageInput, ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSQueue sends events to AWS/LocalStack SQS.
type SQSQueue struct {
	client   sqsAPI
	queueURL string
}

// NewSQSQueue creates a queue wrapper around the provided SQS client.
func NewSQSQueue(client sqsAPI, queueURL string) *SQSQueue {
	if client == nil {
		panic("bookingevents: SQS client cannot be nil")
	}
	if queueURL == "" {
		panic("bookingevents: SQS queueURL cannot be empty")
	}
	return &SQSQueue{
		client:   client,
		queueURL: queueURL,
	}
}

func (q *SQSQueue) Send(ctx context.Context, body string) error {
	_, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("bookingevents: failed to send SQS message: %w", err)
	}
	return nil
}

// Message is an event held by MemoryQueue.
type Message struct {
	ID   string
	Body string
}

// ErrQueueFull is returned by MemoryQueue.Send when the buffer has no room.
var ErrQueueFull = errors.New("bookingevents: memory queue full")

// MemoryQueue buffers events in a channel for local development. Pair it with
// Consume; a full buffer rejects new events instead of blocking the turn.
type MemoryQueue struct {
	ch chan Message
}

// NewMemoryQueue creates a MemoryQueue with the provided buffer capacity.
func NewMemoryQueue(buffer int) *MemoryQueue {
	if buffer <= 0 {
		buffer = 128
	}
	return &MemoryQueue{
		ch: make(chan Message, buffer),
	}
}

// Send enqueues a payload without blocking.
func (q *MemoryQueue) Send(ctx context.Context, body string) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	msg := Message{ID: uuid.NewString(), Body: body}
	select {
	case q.ch <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Consume hands each message to fn until ctx is done.
func (q *MemoryQueue) Consume(ctx context.Context, fn func(Message)) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-q.ch:
			fn(msg)
		}
	}
}

// Drain returns every buffered message without blocking.
func (q *MemoryQueue) Drain() []Message {
	var out []Message
	for {
		select {
		case msg := <-q.ch:
			out = append(out, msg)
		default:
			return out
		}
	}
}

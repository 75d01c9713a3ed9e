package turnlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoRecorder stores one item per entry, keyed by session and entry id.
// Items carry an expiresAt attribute for the table's TTL sweeper.
type DynamoRecorder struct {
	client    dynamoAPI
	tableName string
	ttl       time.Duration
	logger    *logging.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewDynamoRecorder builds a recorder backed by the provided DynamoDB client.
func NewDynamoRecorder(client dynamoAPI, tableName string, ttl time.Duration, logger *logging.Logger) *DynamoRecorder {
	if client == nil {
		panic("turnlog: dynamodb client cannot be nil")
	}
	if tableName == "" {
		panic("turnlog: table name cannot be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DynamoRecorder{
		client:    client,
		tableName: tableName,
		ttl:       ttl,
		logger:    logger,
		tracer:    otel.Tracer("meetings.internal.turnlog.dynamo"),
		now:       time.Now,
	}
}

func (r *DynamoRecorder) Record(ctx context.Context, entry Entry) error {
	ctx, span := r.tracer.Start(ctx, "turnlog.record")
	defer span.End()

	if entry.SessionID == "" {
		err := errors.New("turnlog: session id required")
		span.RecordError(err)
		return err
	}
	now := r.now()
	entry = stamp(entry, now)
	if entry.ExpiresAt == 0 {
		entry.ExpiresAt = now.Add(r.ttl).Unix()
	}

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("turnlog: failed to marshal entry: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(entryId)"),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("turnlog: failed to persist entry: %w", err)
	}
	r.logger.Debug("turn recorded", "session_id", entry.SessionID, "entry_id", entry.ID, "directive", entry.Directive)
	return nil
}

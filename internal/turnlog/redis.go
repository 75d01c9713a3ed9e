package turnlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RedisRecorder appends entries to a list per session.
type RedisRecorder struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
	now    func() time.Time
}

// NewRedisRecorder builds a recorder. A non-positive ttl falls back to DefaultTTL.
func NewRedisRecorder(client *redis.Client, ttl time.Duration, tracer trace.Tracer) *RedisRecorder {
	if client == nil {
		panic("turnlog: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if tracer == nil {
		tracer = otel.Tracer("meetings.internal.turnlog.redis")
	}
	return &RedisRecorder{
		redis:  client,
		ttl:    ttl,
		tracer: tracer,
		now:    time.Now,
	}
}

func (r *RedisRecorder) Record(ctx context.Context, entry Entry) error {
	ctx, span := r.tracer.Start(ctx, "turnlog.record")
	defer span.End()

	if entry.SessionID == "" {
		err := errors.New("turnlog: session id required")
		span.RecordError(err)
		return err
	}
	entry = stamp(entry, r.now())
	span.SetAttributes(attribute.String("turnlog.directive", entry.Directive))

	data, err := json.Marshal(entry)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("turnlog: failed to marshal entry: %w", err)
	}

	key := sessionKey(entry.SessionID)
	pipe := r.redis.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("turnlog: failed to append entry: %w", err)
	}
	return nil
}

// Load returns the recorded entries of a session, oldest first.
func (r *RedisRecorder) Load(ctx context.Context, sessionID string) ([]Entry, error) {
	ctx, span := r.tracer.Start(ctx, "turnlog.load")
	defer span.End()

	raw, err := r.redis.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("turnlog: failed to load entries: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("turnlog: failed to decode entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("turnlog:%s", sessionID)
}

package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/meeting-scheduler/internal/bookingevents"
	appconfig "github.com/wolfman30/meeting-scheduler/internal/config"
	"github.com/wolfman30/meeting-scheduler/internal/turnlog"
	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

// AWSLoader resolves the AWS SDK configuration. cmd/mainconfig.LoadAWSConfig
// satisfies it.
type AWSLoader func(ctx context.Context, cfg *appconfig.Config) (aws.Config, error)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildTurnRecorder selects the turn log backend. An unreachable Redis
// degrades to the no-op recorder.
func BuildTurnRecorder(ctx context.Context, cfg *appconfig.Config, loadAWS AWSLoader, logger *logging.Logger) (turnlog.Recorder, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	switch cfg.TurnLogBackend {
	case "", appconfig.TurnLogNone:
		return turnlog.Nop{}, nil
	case appconfig.TurnLogRedis:
		client := BuildRedisClient(ctx, cfg, logger, true)
		if client == nil {
			logger.Warn("turn log disabled; redis unavailable", "addr", cfg.RedisAddr)
			return turnlog.Nop{}, nil
		}
		logger.Info("turn log enabled", "backend", "redis", "ttl", cfg.SessionTTL)
		return turnlog.NewRedisRecorder(client, cfg.SessionTTL, nil), nil
	case appconfig.TurnLogDynamoDB:
		if loadAWS == nil {
			return nil, fmt.Errorf("bootstrap: aws loader is required for dynamodb turn log")
		}
		awsCfg, err := loadAWS(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load aws config: %w", err)
		}
		logger.Info("turn log enabled", "backend", "dynamodb", "table", cfg.TurnLogTable, "ttl", cfg.SessionTTL)
		return turnlog.NewDynamoRecorder(dynamodb.NewFromConfig(awsCfg), cfg.TurnLogTable, cfg.SessionTTL, logger), nil
	default:
		return nil, fmt.Errorf("bootstrap: unknown turn log backend %q", cfg.TurnLogBackend)
	}
}

// BuildBookingPublisher returns nil when no queue URL is configured. The
// "memory" URL selects the in-process queue used by the dev server; its
// events are logged by a consumer that stops when ctx is done.
func BuildBookingPublisher(ctx context.Context, cfg *appconfig.Config, loadAWS AWSLoader, logger *logging.Logger) (*bookingevents.Publisher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	if ctx == nil {
		ctx = context.Background()
	}

	queueURL := strings.TrimSpace(cfg.BookingEventsQueueURL)
	switch queueURL {
	case "":
		logger.Info("booking events disabled")
		return nil, nil
	case MemoryQueueURL:
		logger.Info("booking events enabled", "queue", "memory")
		queue := bookingevents.NewMemoryQueue(0)
		go queue.Consume(ctx, func(msg bookingevents.Message) {
			logger.Info("booking event", "message_id", msg.ID, "body", msg.Body)
		})
		return bookingevents.NewPublisher(queue, logger), nil
	}

	if loadAWS == nil {
		return nil, fmt.Errorf("bootstrap: aws loader is required for booking events")
	}
	awsCfg, err := loadAWS(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load aws config: %w", err)
	}
	logger.Info("booking events enabled", "queue", queueURL)
	return bookingevents.NewPublisher(bookingevents.NewSQSQueue(sqs.NewFromConfig(awsCfg), queueURL), logger), nil
}

// MemoryQueueURL selects the in-process booking event queue.
const MemoryQueueURL = "memory"

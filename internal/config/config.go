package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Availability modes.
const (
	AvailabilityBusinessHours = "business-hours"
	AvailabilityDemo          = "demo"
)

// Turn log backends.
const (
	TurnLogNone     = "none"
	TurnLogRedis    = "redis"
	TurnLogDynamoDB = "dynamodb"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Scheduling
	Timezone         string
	BusinessOpen     string
	BusinessClose    string
	AvailabilityMode string
	DemoSeed         uint64
	SessionTTL       time.Duration

	// Turn log
	TurnLogBackend string
	TurnLogTable   string
	RedisAddr      string
	RedisPassword  string
	RedisTLS       bool

	// Booking events
	BookingEventsQueueURL string

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Timezone:         getEnv("TZ_NAME", "Europe/Paris"),
		BusinessOpen:     getEnv("BUSINESS_OPEN", "10:00"),
		BusinessClose:    getEnv("BUSINESS_CLOSE", "17:00"),
		AvailabilityMode: strings.ToLower(strings.TrimSpace(getEnv("AVAILABILITY_MODE", AvailabilityBusinessHours))),
		DemoSeed:         getEnvAsUint64("DEMO_SEED", 0),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", 24*time.Hour),

		TurnLogBackend: strings.ToLower(strings.TrimSpace(getEnv("TURN_LOG_BACKEND", TurnLogNone))),
		TurnLogTable:   getEnv("TURN_LOG_TABLE", "meeting_turns"),
		RedisAddr:      getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),

		BookingEventsQueueURL: getEnv("BOOKING_EVENTS_QUEUE_URL", ""),

		AWSRegion:           getEnv("AWS_REGION", "eu-west-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsUint64 retrieves an environment variable as an unsigned integer or returns a default value
func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseUint(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

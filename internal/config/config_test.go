package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "TZ_NAME", "BUSINESS_OPEN", "BUSINESS_CLOSE",
		"AVAILABILITY_MODE", "DEMO_SEED", "SESSION_TTL", "TURN_LOG_BACKEND", "BOOKING_EVENTS_QUEUE_URL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.Timezone != "Europe/Paris" {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
	if cfg.BusinessOpen != "10:00" || cfg.BusinessClose != "17:00" {
		t.Fatalf("expected default business window, got %s-%s", cfg.BusinessOpen, cfg.BusinessClose)
	}
	if cfg.AvailabilityMode != AvailabilityBusinessHours {
		t.Fatalf("expected business-hours availability, got %s", cfg.AvailabilityMode)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.TurnLogBackend != TurnLogNone {
		t.Fatalf("expected turn log disabled by default, got %s", cfg.TurnLogBackend)
	}
	if cfg.BookingEventsQueueURL != "" {
		t.Fatalf("expected booking events disabled by default, got %s", cfg.BookingEventsQueueURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TZ_NAME", "Europe/Prague")
	t.Setenv("BUSINESS_OPEN", "09:00")
	t.Setenv("AVAILABILITY_MODE", " Demo ")
	t.Setenv("DEMO_SEED", "42")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("TURN_LOG_BACKEND", "REDIS")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("BOOKING_EVENTS_QUEUE_URL", "http://localhost:4566/000000000000/bookings")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.Timezone != "Europe/Prague" {
		t.Fatalf("expected timezone override, got %s", cfg.Timezone)
	}
	if cfg.BusinessOpen != "09:00" {
		t.Fatalf("expected business open override, got %s", cfg.BusinessOpen)
	}
	if cfg.AvailabilityMode != AvailabilityDemo {
		t.Fatalf("expected demo availability, got %q", cfg.AvailabilityMode)
	}
	if cfg.DemoSeed != 42 {
		t.Fatalf("expected demo seed override, got %d", cfg.DemoSeed)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("expected session ttl override, got %s", cfg.SessionTTL)
	}
	if cfg.TurnLogBackend != TurnLogRedis {
		t.Fatalf("expected redis turn log, got %s", cfg.TurnLogBackend)
	}
	if !cfg.RedisTLS {
		t.Fatalf("expected redis tls enabled")
	}
	if cfg.BookingEventsQueueURL == "" {
		t.Fatalf("expected booking events queue override")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DEMO_SEED", "-1")
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("REDIS_TLS", "maybe")
	cfg := Load()
	if cfg.DemoSeed != 0 {
		t.Fatalf("expected default seed, got %d", cfg.DemoSeed)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default ttl, got %s", cfg.SessionTTL)
	}
	if cfg.RedisTLS {
		t.Fatalf("expected redis tls default")
	}
}

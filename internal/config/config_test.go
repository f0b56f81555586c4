package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "REDIS_ENABLED", "REPORT_CACHE_TTL", "PARK_SOURCE", "PARK_DEFAULT_MIN_TRIPS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if !cfg.Redis.Enabled {
		t.Error("expected redis cache enabled by default")
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Errorf("expected 10m cache ttl, got %v", cfg.Redis.TTL)
	}
	if cfg.Park.Source != ParkSourcePostgres {
		t.Errorf("expected postgres source, got %s", cfg.Park.Source)
	}
	if cfg.Park.DefaultMinTrips != 1 {
		t.Errorf("expected default min trips 1, got %d", cfg.Park.DefaultMinTrips)
	}
	if cfg.Log.Level != "INFO" {
		t.Errorf("expected INFO log level, got %s", cfg.Log.Level)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("PARK_SOURCE", ParkSourceMemory)
	t.Setenv("PARK_DEFAULT_MIN_TRIPS", "3")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis cache disabled")
	}
	if cfg.Redis.TTL != 30*time.Second {
		t.Errorf("expected 30s cache ttl, got %v", cfg.Redis.TTL)
	}
	if cfg.Park.Source != ParkSourceMemory {
		t.Errorf("expected memory source, got %s", cfg.Park.Source)
	}
	if cfg.Park.DefaultMinTrips != 3 {
		t.Errorf("expected min trips 3, got %d", cfg.Park.DefaultMinTrips)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("NEW_RELIC_ENABLED", "maybe")

	cfg := Load()

	if cfg.Redis.DB != 0 {
		t.Errorf("expected redis db fallback 0, got %d", cfg.Redis.DB)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("expected read timeout fallback, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.NewRelic.Enabled {
		t.Error("expected new relic disabled on malformed value")
	}
}

package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "30")

	cfg := FromEnv()

	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected redis addr redis:6379, got %q", cfg.RedisAddr)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
}

func TestFromEnv_BadDurationFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")

	if got := FromEnv().ShutdownTimeout; got != 10*time.Second {
		t.Fatalf("expected fallback to 10s, got %v", got)
	}
}

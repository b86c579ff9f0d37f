package server

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.RateLimit <= 0 {
		t.Errorf("expected positive rate limit, got %v", cfg.RateLimit)
	}
	if cfg.ShutdownTimeout <= 0 {
		t.Errorf("expected positive shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestConfigPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg := NewConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080 from env, got %d", cfg.Port)
	}
}

func TestConfigPortEnvInvalid(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := NewConfig()
	if cfg.Port != DefaultPort {
		t.Errorf("expected invalid PORT to be ignored, got %d", cfg.Port)
	}
}

func TestConfigShutdownTimeoutEnvOverride(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")

	cfg := NewConfig()
	if cfg.ShutdownTimeout != 45*time.Second {
		t.Errorf("expected 45s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

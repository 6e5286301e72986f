package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "SESSION_SECRET", "SESSION_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_BATCH_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxBatchSize != 1000 {
		t.Errorf("MaxBatchSize = %d, want 1000", cfg.MaxBatchSize)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("MAX_BATCH_SIZE", "50")

	cfg := Load()

	if cfg.Port != "9090" || cfg.SessionSecret != "s3cret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 4 {
		t.Errorf("rate limit = %v/%d, want 2.5/4", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxBatchSize != 50 {
		t.Errorf("MaxBatchSize = %d, want 50", cfg.MaxBatchSize)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("RATE_LIMIT_BURST", "-3")
	t.Setenv("MAX_BATCH_SIZE", "lots")
	t.Setenv("RATE_LIMIT_RPS", "0")

	cfg := Load()

	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want default", cfg.SessionTTL)
	}
	if cfg.RateLimitBurst != 10 || cfg.MaxBatchSize != 1000 || cfg.RateLimitRPS != 5 {
		t.Errorf("invalid values should fall back to defaults: %+v", cfg)
	}
}

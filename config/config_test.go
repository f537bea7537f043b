package config

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080, LogLevel: "info"},
		Session: SessionConfig{
			Backend:         BackendMemory,
			TTL:             time.Hour,
			JanitorInterval: time.Minute,
		},
		SQLite: SQLiteConfig{DSN: "file::memory:"},
		Tracker: TrackerConfig{
			DefaultGoal: decimal.NewFromInt(1000),
			Milestone:   decimal.NewFromInt(20000),
			Locale:      "en-US",
			Currency:    "USD",
		},
		RateLimit: RateLimitConfig{SessionCreates: 10, Window: time.Minute},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid memory backend config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sqlite backend config",
			mutate: func(c *Config) { c.Session.Backend = BackendSQLite },
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Server.Port = 70000 },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid session backend",
			mutate:      func(c *Config) { c.Session.Backend = "postgres" },
			wantErr:     true,
			errorString: "invalid session backend 'postgres'",
		},
		{
			name: "redis backend missing url",
			mutate: func(c *Config) {
				c.Session.Backend = BackendRedis
				c.Redis.URL = ""
			},
			wantErr:     true,
			errorString: "Redis URL cannot be empty",
		},
		{
			name:        "non-positive default goal",
			mutate:      func(c *Config) { c.Tracker.DefaultGoal = decimal.Zero },
			wantErr:     true,
			errorString: "default goal must be greater than zero",
		},
		{
			name:        "unknown currency",
			mutate:      func(c *Config) { c.Tracker.Currency = "XYZW" },
			wantErr:     true,
			errorString: "invalid currency 'XYZW'",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.Server.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Session.TTL = 0
	cfg.RateLimit.SessionCreates = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}
	for _, want := range []string{"invalid port 0", "session TTL must be positive", "rate limit must be at least 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_JANITOR_ENABLED", "false")
	t.Setenv("TRACKER_MILESTONE", "15000")
	t.Setenv("TRACKER_DEFAULT_GOAL", "not-a-number")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Session.Backend != BackendRedis {
		t.Errorf("Backend = %q, want %q", cfg.Session.Backend, BackendRedis)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("TTL = %s, want 30m", cfg.Session.TTL)
	}
	if cfg.Session.JanitorEnabled {
		t.Error("JanitorEnabled = true, want false")
	}
	if !cfg.Tracker.Milestone.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("Milestone = %s, want 15000", cfg.Tracker.Milestone)
	}
	if !cfg.Tracker.DefaultGoal.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("DefaultGoal = %s, want fallback 1000", cfg.Tracker.DefaultGoal)
	}
}

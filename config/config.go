// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Session storage backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Redis     RedisConfig
	SQLite    SQLiteConfig
	Tracker   TrackerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
	LogLevel     string
}

// SessionConfig holds session storage configuration.
type SessionConfig struct {
	Backend         string
	TTL             time.Duration
	JanitorEnabled  bool
	JanitorInterval time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL       string
	Password  string
	DB        int
	KeyPrefix string
}

// SQLiteConfig holds SQLite configuration. The default DSN is a shared
// in-memory database so nothing outlives the process.
type SQLiteConfig struct {
	DSN string
}

// TrackerConfig holds the tracker defaults and display settings.
type TrackerConfig struct {
	DefaultGoal decimal.Decimal
	Milestone   decimal.Decimal
	Locale      string
	Currency    string
}

// RateLimitConfig limits how many sessions one client may start per window.
type RateLimitConfig struct {
	SessionCreates int
	Window         time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Backend:         strings.ToLower(getEnv("SESSION_BACKEND", BackendMemory)),
			TTL:             getEnvAsDuration("SESSION_TTL", 2*time.Hour),
			JanitorEnabled:  getEnvAsBool("SESSION_JANITOR_ENABLED", true),
			JanitorInterval: getEnvAsDuration("SESSION_JANITOR_INTERVAL", time.Minute),
		},
		Redis: RedisConfig{
			URL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "ewt:session:"),
		},
		SQLite: SQLiteConfig{
			DSN: getEnv("SQLITE_DSN", "file:eternal-wealth?mode=memory&cache=shared"),
		},
		Tracker: TrackerConfig{
			DefaultGoal: getEnvAsDecimal("TRACKER_DEFAULT_GOAL", decimal.NewFromInt(1000)),
			Milestone:   getEnvAsDecimal("TRACKER_MILESTONE", decimal.NewFromInt(20000)),
			Locale:      getEnv("TRACKER_LOCALE", "en-US"),
			Currency:    getEnv("TRACKER_CURRENCY", "USD"),
		},
		RateLimit: RateLimitConfig{
			SessionCreates: getEnvAsInt("RATE_LIMIT_SESSION_CREATES", 20),
			Window:         getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

// Validate checks the configuration and reports every problem found at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Server.Port))
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.Server.LogLevel))
	}

	validBackends := []string{BackendMemory, BackendRedis, BackendSQLite}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Session.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		problems = append(problems, fmt.Sprintf("invalid session backend '%s': must be one of %v", c.Session.Backend, validBackends))
	}

	if c.Session.TTL <= 0 {
		problems = append(problems, "session TTL must be positive")
	}
	if c.Session.JanitorInterval <= 0 {
		problems = append(problems, "session janitor interval must be positive")
	}

	if c.Session.Backend == BackendRedis && c.Redis.URL == "" {
		problems = append(problems, "Redis URL cannot be empty when using redis backend")
	}
	if c.Session.Backend == BackendSQLite && c.SQLite.DSN == "" {
		problems = append(problems, "SQLite DSN cannot be empty when using sqlite backend")
	}

	if !c.Tracker.DefaultGoal.IsPositive() {
		problems = append(problems, "default goal must be greater than zero")
	}
	if !c.Tracker.Milestone.IsPositive() {
		problems = append(problems, "milestone must be greater than zero")
	}
	if _, err := language.Parse(c.Tracker.Locale); err != nil {
		problems = append(problems, fmt.Sprintf("invalid locale '%s': %v", c.Tracker.Locale, err))
	}
	if _, err := currency.ParseISO(c.Tracker.Currency); err != nil {
		problems = append(problems, fmt.Sprintf("invalid currency '%s': %v", c.Tracker.Currency, err))
	}

	if c.RateLimit.SessionCreates < 1 {
		problems = append(problems, "session create rate limit must be at least 1")
	}
	if c.RateLimit.Window <= 0 {
		problems = append(problems, "rate limit window must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return defaultValue
}

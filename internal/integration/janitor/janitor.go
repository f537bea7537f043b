// Package janitor evicts idle sessions in the background.
package janitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
)

// Evicter runs one eviction pass.
type Evicter interface {
	Execute(ctx context.Context) (*session.EvictExpiredSessionsOutput, error)
}

// Janitor periodically removes sessions that have been idle past their TTL.
type Janitor struct {
	evicter  Evicter
	interval time.Duration
}

// Config holds configuration for the janitor.
type Config struct {
	Interval time.Duration
}

// DefaultConfig returns the default janitor configuration.
func DefaultConfig() Config {
	return Config{
		Interval: time.Minute,
	}
}

// New creates a new janitor.
func New(evicter Evicter, config Config) *Janitor {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}

	return &Janitor{
		evicter:  evicter,
		interval: config.Interval,
	}
}

// Start begins the eviction loop. It blocks until the context is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	slog.Info("Session janitor started", "interval", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Session janitor shutting down")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// SweepNow runs a single eviction pass immediately.
func (j *Janitor) SweepNow(ctx context.Context) int {
	return j.sweep(ctx)
}

func (j *Janitor) sweep(ctx context.Context) int {
	output, err := j.evicter.Execute(ctx)
	if err != nil {
		slog.Error("Failed to evict expired sessions", "error", err)
		return 0
	}

	if output.Evicted > 0 {
		slog.Info("Evicted expired sessions", "count", output.Evicted)
	}
	return output.Evicted
}

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
)

// EvictExpiredSessionsOutput represents the output of an eviction run.
type EvictExpiredSessionsOutput struct {
	Evicted int
}

// EvictExpiredSessionsUseCase removes sessions that have been idle past their TTL.
type EvictExpiredSessionsUseCase struct {
	sessionRepo adapter.SessionRepository
	now         func() time.Time
}

// NewEvictExpiredSessionsUseCase creates a new EvictExpiredSessionsUseCase instance.
func NewEvictExpiredSessionsUseCase(sessionRepo adapter.SessionRepository) *EvictExpiredSessionsUseCase {
	return &EvictExpiredSessionsUseCase{
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// WithClock replaces the clock that decides which sessions are idle.
func (uc *EvictExpiredSessionsUseCase) WithClock(now func() time.Time) *EvictExpiredSessionsUseCase {
	uc.now = now
	return uc
}

// Execute runs one eviction pass.
func (uc *EvictExpiredSessionsUseCase) Execute(ctx context.Context) (*EvictExpiredSessionsOutput, error) {
	evicted, err := uc.sessionRepo.DeleteExpired(ctx, uc.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to evict expired sessions: %w", err)
	}

	return &EvictExpiredSessionsOutput{
		Evicted: evicted,
	}, nil
}

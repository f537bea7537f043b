package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
)

// EndSessionInput represents the input for ending a session.
type EndSessionInput struct {
	SessionID uuid.UUID
}

// EndSessionUseCase discards a session and all of its state.
type EndSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewEndSessionUseCase creates a new EndSessionUseCase instance.
func NewEndSessionUseCase(sessionRepo adapter.SessionRepository) *EndSessionUseCase {
	return &EndSessionUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute ends the session.
func (uc *EndSessionUseCase) Execute(ctx context.Context, input EndSessionInput) error {
	if err := uc.sessionRepo.Delete(ctx, input.SessionID); err != nil {
		return RepositoryError("end session", err)
	}
	return nil
}

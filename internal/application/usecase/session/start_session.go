package session

import (
	"context"
	"fmt"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// StartSessionOutput represents the output of starting a session.
type StartSessionOutput struct {
	Session   *entity.Session
	Workspace *workspace.Workspace
}

// StartSessionUseCase creates a fresh session with an empty workspace.
type StartSessionUseCase struct {
	sessionRepo adapter.SessionRepository
	tracker     valueobject.TrackerConfig
}

// NewStartSessionUseCase creates a new StartSessionUseCase instance.
func NewStartSessionUseCase(sessionRepo adapter.SessionRepository, tracker valueobject.TrackerConfig) *StartSessionUseCase {
	return &StartSessionUseCase{
		sessionRepo: sessionRepo,
		tracker:     tracker,
	}
}

// Execute starts a new session.
func (uc *StartSessionUseCase) Execute(ctx context.Context) (*StartSessionOutput, error) {
	session := entity.NewSession()
	ws := workspace.New(uc.tracker.DefaultGoal)

	if err := uc.sessionRepo.Create(ctx, session, ws); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &StartSessionOutput{
		Session:   session,
		Workspace: ws,
	}, nil
}

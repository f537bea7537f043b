package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// GetSessionInput represents the input for reading a session.
type GetSessionInput struct {
	SessionID uuid.UUID
}

// GetSessionOutput represents the full state of a session.
type GetSessionOutput struct {
	Session   *entity.Session
	Workspace *workspace.Workspace
}

// GetSessionUseCase handles reading a whole session.
type GetSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(sessionRepo adapter.SessionRepository) *GetSessionUseCase {
	return &GetSessionUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute retrieves the session and its workspace.
func (uc *GetSessionUseCase) Execute(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	session, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, RepositoryError("get session", err)
	}

	return &GetSessionOutput{
		Session:   session,
		Workspace: ws,
	}, nil
}

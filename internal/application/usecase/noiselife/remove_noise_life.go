package noiselife

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// RemoveNoiseLifeInput represents the input for removing a noise/life entry.
type RemoveNoiseLifeInput struct {
	SessionID uuid.UUID
	EntryID   uuid.UUID
}

// RemoveNoiseLifeUseCase handles removing noise/life entries.
type RemoveNoiseLifeUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewRemoveNoiseLifeUseCase creates a new RemoveNoiseLifeUseCase instance.
func NewRemoveNoiseLifeUseCase(sessionRepo adapter.SessionRepository) *RemoveNoiseLifeUseCase {
	return &RemoveNoiseLifeUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute removes the entry.
func (uc *RemoveNoiseLifeUseCase) Execute(ctx context.Context, input RemoveNoiseLifeInput) error {
	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		if !ws.RemoveNoiseLife(input.EntryID) {
			return domainerror.NewEntryNotFoundError("noise/life")
		}
		return nil
	})
	return session.RepositoryError("remove noise/life entry", err)
}

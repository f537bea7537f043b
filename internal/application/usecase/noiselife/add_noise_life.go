// Package noiselife contains use cases for classifying spending as noise or life.
package noiselife

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// AddNoiseLifeInput represents the input for adding a noise/life entry.
type AddNoiseLifeInput struct {
	SessionID uuid.UUID
	Item      string
	Type      entity.NoiseLifeType // Optional, defaults to noise
}

// AddNoiseLifeOutput represents the output of adding a noise/life entry.
type AddNoiseLifeOutput struct {
	Entry entity.NoiseLifeEntry
}

// AddNoiseLifeUseCase handles adding noise/life entries.
type AddNoiseLifeUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewAddNoiseLifeUseCase creates a new AddNoiseLifeUseCase instance.
func NewAddNoiseLifeUseCase(sessionRepo adapter.SessionRepository) *AddNoiseLifeUseCase {
	return &AddNoiseLifeUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute adds the entry.
func (uc *AddNoiseLifeUseCase) Execute(ctx context.Context, input AddNoiseLifeInput) (*AddNoiseLifeOutput, error) {
	var entry entity.NoiseLifeEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var addErr error
		entry, addErr = ws.AddNoiseLife(input.Item, input.Type)
		return addErr
	})
	if err != nil {
		return nil, session.RepositoryError("add noise/life entry", err)
	}

	return &AddNoiseLifeOutput{Entry: entry}, nil
}

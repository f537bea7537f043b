package noiselife

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

// ListNoiseLifeInput represents the input for listing noise/life entries.
type ListNoiseLifeInput struct {
	SessionID uuid.UUID
	Type      entity.NoiseLifeType // Optional filter
}

// ListNoiseLifeOutput represents the listed entries and the counts over all entries.
type ListNoiseLifeOutput struct {
	Entries    []entity.NoiseLifeEntry
	NoiseCount int
	LifeCount  int
}

// ListNoiseLifeUseCase handles listing noise/life entries.
type ListNoiseLifeUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListNoiseLifeUseCase creates a new ListNoiseLifeUseCase instance.
func NewListNoiseLifeUseCase(sessionRepo adapter.SessionRepository) *ListNoiseLifeUseCase {
	return &ListNoiseLifeUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists entries, optionally restricted to one type.
func (uc *ListNoiseLifeUseCase) Execute(ctx context.Context, input ListNoiseLifeInput) (*ListNoiseLifeOutput, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"type",
			"type must be noise or life",
			domainerror.ErrInvalidEntryType,
		)
	}

	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("list noise/life entries", err)
	}

	noise, life := aggregate.NoiseLifeCounts(ws.NoiseLife(""))
	return &ListNoiseLifeOutput{
		Entries:    ws.NoiseLife(input.Type),
		NoiseCount: noise,
		LifeCount:  life,
	}, nil
}

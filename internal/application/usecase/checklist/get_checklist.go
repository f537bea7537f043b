package checklist

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// GetChecklistInput represents the input for reading one checklist.
type GetChecklistInput struct {
	SessionID uuid.UUID
	Kind      entity.ChecklistKind
}

// GetChecklistUseCase handles reading one checklist.
type GetChecklistUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewGetChecklistUseCase creates a new GetChecklistUseCase instance.
func NewGetChecklistUseCase(sessionRepo adapter.SessionRepository) *GetChecklistUseCase {
	return &GetChecklistUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute returns the checklist for kind.
func (uc *GetChecklistUseCase) Execute(ctx context.Context, input GetChecklistInput) (*ChecklistView, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("get checklist", err)
	}

	list, err := ws.Checklist(input.Kind)
	if err != nil {
		return nil, err
	}

	view := NewChecklistView(list)
	return &view, nil
}

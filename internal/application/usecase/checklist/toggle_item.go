package checklist

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// ToggleItemInput represents the input for toggling a checklist item.
type ToggleItemInput struct {
	SessionID uuid.UUID
	Kind      entity.ChecklistKind
	Key       string
}

// ToggleItemOutput represents the toggled item and its checklist afterwards.
type ToggleItemOutput struct {
	Item      entity.ChecklistItem
	Checklist ChecklistView
}

// ToggleItemUseCase handles toggling one checklist item.
type ToggleItemUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewToggleItemUseCase creates a new ToggleItemUseCase instance.
func NewToggleItemUseCase(sessionRepo adapter.SessionRepository) *ToggleItemUseCase {
	return &ToggleItemUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute flips the checked flag of the item.
func (uc *ToggleItemUseCase) Execute(ctx context.Context, input ToggleItemInput) (*ToggleItemOutput, error) {
	var item entity.ChecklistItem

	ws, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var (
			found     bool
			toggleErr error
		)
		item, found, toggleErr = ws.ToggleChecklistItem(input.Kind, input.Key)
		if toggleErr != nil {
			return toggleErr
		}
		if !found {
			return domainerror.NewChecklistError(
				domainerror.ErrCodeChecklistItemNotFound,
				"checklist item not found: "+input.Key,
				domainerror.ErrChecklistItemNotFound,
			)
		}
		return nil
	})
	if err != nil {
		return nil, session.RepositoryError("toggle checklist item", err)
	}

	list, err := ws.Checklist(input.Kind)
	if err != nil {
		return nil, err
	}

	return &ToggleItemOutput{
		Item:      item,
		Checklist: NewChecklistView(list),
	}, nil
}

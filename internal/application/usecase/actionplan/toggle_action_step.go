package actionplan

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// ToggleActionStepInput represents the input for toggling an action-plan step.
type ToggleActionStepInput struct {
	SessionID uuid.UUID
	EntryID   uuid.UUID
}

// ToggleActionStepUseCase handles flipping a step between Planned and Completed.
type ToggleActionStepUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewToggleActionStepUseCase creates a new ToggleActionStepUseCase instance.
func NewToggleActionStepUseCase(sessionRepo adapter.SessionRepository) *ToggleActionStepUseCase {
	return &ToggleActionStepUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute toggles the step status.
func (uc *ToggleActionStepUseCase) Execute(ctx context.Context, input ToggleActionStepInput) (*ActionStepOutput, error) {
	var entry entity.ActionPlanEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var found bool
		entry, found = ws.ToggleActionStep(input.EntryID)
		if !found {
			return domainerror.NewEntryNotFoundError("action plan")
		}
		return nil
	})
	if err != nil {
		return nil, session.RepositoryError("toggle action step", err)
	}

	return &ActionStepOutput{Entry: entry}, nil
}

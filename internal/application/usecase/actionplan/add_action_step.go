// Package actionplan contains 30-day action plan use cases.
package actionplan

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// AddActionStepInput represents the input for adding an action-plan step.
type AddActionStepInput struct {
	SessionID uuid.UUID
	Step      string
	Timeline  string
}

// ActionStepOutput wraps a single action-plan step.
type ActionStepOutput struct {
	Entry entity.ActionPlanEntry
}

// AddActionStepUseCase handles adding action-plan steps.
type AddActionStepUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewAddActionStepUseCase creates a new AddActionStepUseCase instance.
func NewAddActionStepUseCase(sessionRepo adapter.SessionRepository) *AddActionStepUseCase {
	return &AddActionStepUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute adds the step in the Planned state.
func (uc *AddActionStepUseCase) Execute(ctx context.Context, input AddActionStepInput) (*ActionStepOutput, error) {
	var entry entity.ActionPlanEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var addErr error
		entry, addErr = ws.AddActionStep(input.Step, input.Timeline)
		return addErr
	})
	if err != nil {
		return nil, session.RepositoryError("add action step", err)
	}

	return &ActionStepOutput{Entry: entry}, nil
}

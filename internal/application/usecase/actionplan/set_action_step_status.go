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

// SetActionStepStatusInput represents the input for setting a step status.
type SetActionStepStatusInput struct {
	SessionID uuid.UUID
	EntryID   uuid.UUID
	Status    entity.ActionStatus
}

// SetActionStepStatusUseCase handles setting a step status directly.
type SetActionStepStatusUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewSetActionStepStatusUseCase creates a new SetActionStepStatusUseCase instance.
func NewSetActionStepStatusUseCase(sessionRepo adapter.SessionRepository) *SetActionStepStatusUseCase {
	return &SetActionStepStatusUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute sets the step status.
func (uc *SetActionStepStatusUseCase) Execute(ctx context.Context, input SetActionStepStatusInput) (*ActionStepOutput, error) {
	var entry entity.ActionPlanEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var (
			found  bool
			setErr error
		)
		entry, found, setErr = ws.SetActionStepStatus(input.EntryID, input.Status)
		if setErr != nil {
			return setErr
		}
		if !found {
			return domainerror.NewEntryNotFoundError("action plan")
		}
		return nil
	})
	if err != nil {
		return nil, session.RepositoryError("set action step status", err)
	}

	return &ActionStepOutput{Entry: entry}, nil
}

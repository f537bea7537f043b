package automation

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// SetAutomationStatusInput represents the input for setting an automation status.
type SetAutomationStatusInput struct {
	SessionID uuid.UUID
	EntryID   uuid.UUID
	Status    entity.AutomationStatus
}

// SetAutomationStatusUseCase handles setting an automation status directly.
type SetAutomationStatusUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewSetAutomationStatusUseCase creates a new SetAutomationStatusUseCase instance.
func NewSetAutomationStatusUseCase(sessionRepo adapter.SessionRepository) *SetAutomationStatusUseCase {
	return &SetAutomationStatusUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute sets the automation status.
func (uc *SetAutomationStatusUseCase) Execute(ctx context.Context, input SetAutomationStatusInput) (*AutomationOutput, error) {
	var entry entity.AutomationEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var (
			found  bool
			setErr error
		)
		entry, found, setErr = ws.SetAutomationStatus(input.EntryID, input.Status)
		if setErr != nil {
			return setErr
		}
		if !found {
			return domainerror.NewEntryNotFoundError("automation")
		}
		return nil
	})
	if err != nil {
		return nil, session.RepositoryError("set automation status", err)
	}

	return &AutomationOutput{Entry: entry}, nil
}

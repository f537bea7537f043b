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

// ToggleAutomationInput represents the input for toggling an automation.
type ToggleAutomationInput struct {
	SessionID uuid.UUID
	EntryID   uuid.UUID
}

// ToggleAutomationUseCase handles flipping an automation between Active and Planned.
type ToggleAutomationUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewToggleAutomationUseCase creates a new ToggleAutomationUseCase instance.
func NewToggleAutomationUseCase(sessionRepo adapter.SessionRepository) *ToggleAutomationUseCase {
	return &ToggleAutomationUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute toggles the automation status.
func (uc *ToggleAutomationUseCase) Execute(ctx context.Context, input ToggleAutomationInput) (*AutomationOutput, error) {
	var entry entity.AutomationEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var found bool
		entry, found = ws.ToggleAutomation(input.EntryID)
		if !found {
			return domainerror.NewEntryNotFoundError("automation")
		}
		return nil
	})
	if err != nil {
		return nil, session.RepositoryError("toggle automation", err)
	}

	return &AutomationOutput{Entry: entry}, nil
}

// Package automation contains automation-habit use cases.
package automation

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// AddAutomationInput represents the input for adding an automation.
type AddAutomationInput struct {
	SessionID       uuid.UUID
	Method          string
	AmountFrequency string
}

// AutomationOutput wraps a single automation entry.
type AutomationOutput struct {
	Entry entity.AutomationEntry
}

// AddAutomationUseCase handles adding automations.
type AddAutomationUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewAddAutomationUseCase creates a new AddAutomationUseCase instance.
func NewAddAutomationUseCase(sessionRepo adapter.SessionRepository) *AddAutomationUseCase {
	return &AddAutomationUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute adds the automation in the Active state.
func (uc *AddAutomationUseCase) Execute(ctx context.Context, input AddAutomationInput) (*AutomationOutput, error) {
	var entry entity.AutomationEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var addErr error
		entry, addErr = ws.AddAutomation(input.Method, input.AmountFrequency)
		return addErr
	})
	if err != nil {
		return nil, session.RepositoryError("add automation", err)
	}

	return &AutomationOutput{Entry: entry}, nil
}

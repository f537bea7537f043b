package automation

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// ListAutomationsInput represents the input for listing automations.
type ListAutomationsInput struct {
	SessionID uuid.UUID
}

// ListAutomationsOutput represents the automations with per-status counts.
type ListAutomationsOutput struct {
	Entries []entity.AutomationEntry
	Active  int
	Planned int
}

// ListAutomationsUseCase handles listing automations.
type ListAutomationsUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListAutomationsUseCase creates a new ListAutomationsUseCase instance.
func NewListAutomationsUseCase(sessionRepo adapter.SessionRepository) *ListAutomationsUseCase {
	return &ListAutomationsUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists automations in insertion order.
func (uc *ListAutomationsUseCase) Execute(ctx context.Context, input ListAutomationsInput) (*ListAutomationsOutput, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("list automations", err)
	}

	output := &ListAutomationsOutput{Entries: ws.Automations()}
	for _, e := range output.Entries {
		if e.Status == entity.AutomationStatusActive {
			output.Active++
		} else {
			output.Planned++
		}
	}
	return output, nil
}

// Package savings contains emergency-fund use cases.
package savings

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// GetSavingsInput represents the input for reading the savings state.
type GetSavingsInput struct {
	SessionID uuid.UUID
}

// SavingsOutput is the savings state with its progress towards the goal.
type SavingsOutput struct {
	State    entity.SavingsState
	Progress aggregate.Progress
}

// NewSavingsOutput derives the progress for a savings state.
func NewSavingsOutput(state entity.SavingsState) *SavingsOutput {
	return &SavingsOutput{
		State:    state,
		Progress: aggregate.NewProgress(state.EmergencyFund, state.EmergencyFundGoal),
	}
}

// GetSavingsUseCase handles reading the savings state.
type GetSavingsUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewGetSavingsUseCase creates a new GetSavingsUseCase instance.
func NewGetSavingsUseCase(sessionRepo adapter.SessionRepository) *GetSavingsUseCase {
	return &GetSavingsUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute returns the savings state.
func (uc *GetSavingsUseCase) Execute(ctx context.Context, input GetSavingsInput) (*SavingsOutput, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("get savings", err)
	}
	return NewSavingsOutput(ws.Savings()), nil
}

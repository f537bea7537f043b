// Package income contains income-related use cases.
package income

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// AddIncomeInput represents the input for adding an income entry.
type AddIncomeInput struct {
	SessionID uuid.UUID
	Source    string
	Amount    string // user-entered text
}

// AddIncomeOutput represents the output of adding an income entry.
type AddIncomeOutput struct {
	Entry entity.IncomeEntry
}

// AddIncomeUseCase handles adding income.
type AddIncomeUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(sessionRepo adapter.SessionRepository) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute adds the income entry to the session.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	var entry entity.IncomeEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var addErr error
		entry, addErr = ws.AddIncome(input.Source, input.Amount)
		return addErr
	})
	if err != nil {
		return nil, session.RepositoryError("add income", err)
	}

	return &AddIncomeOutput{
		Entry: entry,
	}, nil
}

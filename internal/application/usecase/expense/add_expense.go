// Package expense contains expense-related use cases.
package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// AddExpenseInput represents the input for adding an expense entry.
type AddExpenseInput struct {
	SessionID   uuid.UUID
	Category    string
	Description string // Optional
	Amount      string
}

// AddExpenseOutput represents the output of adding an expense entry.
type AddExpenseOutput struct {
	Entry entity.ExpenseEntry
}

// AddExpenseUseCase handles adding expenses.
type AddExpenseUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(sessionRepo adapter.SessionRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute adds the expense entry to the session.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	var entry entity.ExpenseEntry

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var addErr error
		entry, addErr = ws.AddExpense(input.Category, input.Description, input.Amount)
		return addErr
	})
	if err != nil {
		return nil, session.RepositoryError("add expense", err)
	}

	return &AddExpenseOutput{
		Entry: entry,
	}, nil
}

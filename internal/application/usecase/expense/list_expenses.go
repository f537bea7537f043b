package expense

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	SessionID uuid.UUID
}

// ListExpensesOutput represents the expense entries and their total.
type ListExpensesOutput struct {
	Entries []entity.ExpenseEntry
	Total   decimal.Decimal
}

// ListExpensesUseCase handles listing expenses.
type ListExpensesUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(sessionRepo adapter.SessionRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists expense entries in insertion order.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("list expenses", err)
	}

	entries := ws.Expenses()
	return &ListExpensesOutput{
		Entries: entries,
		Total:   aggregate.TotalExpenses(entries),
	}, nil
}

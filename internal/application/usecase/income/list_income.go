package income

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// ListIncomeInput represents the input for listing income.
type ListIncomeInput struct {
	SessionID uuid.UUID
}

// ListIncomeOutput represents the income entries and their total.
type ListIncomeOutput struct {
	Entries []entity.IncomeEntry
	Total   decimal.Decimal
}

// ListIncomeUseCase handles listing income.
type ListIncomeUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(sessionRepo adapter.SessionRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists income entries in insertion order.
func (uc *ListIncomeUseCase) Execute(ctx context.Context, input ListIncomeInput) (*ListIncomeOutput, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("list income", err)
	}

	entries := ws.Income()
	return &ListIncomeOutput{
		Entries: entries,
		Total:   aggregate.TotalIncome(entries),
	}, nil
}

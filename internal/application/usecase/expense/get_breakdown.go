package expense

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
)

// GetBreakdownInput represents the input for the expense breakdown.
type GetBreakdownInput struct {
	SessionID uuid.UUID
}

// GetBreakdownOutput groups expenses by category, both overall and for money leaks.
type GetBreakdownOutput struct {
	TotalExpenses      decimal.Decimal
	Categories         []aggregate.CategoryTotal
	MaxCategoryTotal   decimal.Decimal
	MoneyLeaks         []aggregate.CategoryTotal
	MaxMoneyLeakTotal  decimal.Decimal
	MoneyLeakThreshold decimal.Decimal
}

// GetBreakdownUseCase handles the expense breakdown.
type GetBreakdownUseCase struct {
	sessionRepo adapter.SessionRepository
	tracker     valueobject.TrackerConfig
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(sessionRepo adapter.SessionRepository, tracker valueobject.TrackerConfig) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{
		sessionRepo: sessionRepo,
		tracker:     tracker,
	}
}

// Execute computes the breakdown for the session's current expenses.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, input GetBreakdownInput) (*GetBreakdownOutput, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("get expense breakdown", err)
	}

	return Breakdown(ws.Expenses(), uc.tracker), nil
}

// Breakdown computes the category and money-leak groupings of expenses.
func Breakdown(expenses []entity.ExpenseEntry, tracker valueobject.TrackerConfig) *GetBreakdownOutput {
	categories := aggregate.CategoryTotals(expenses)
	leaks := aggregate.MoneyLeakTotals(expenses, tracker.MoneyLeakThreshold)

	return &GetBreakdownOutput{
		TotalExpenses:      aggregate.TotalExpenses(expenses),
		Categories:         categories,
		MaxCategoryTotal:   aggregate.MaxTotal(categories),
		MoneyLeaks:         leaks,
		MaxMoneyLeakTotal:  aggregate.MaxTotal(leaks),
		MoneyLeakThreshold: tracker.MoneyLeakThreshold,
	}
}

package workspace

import (
	"errors"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
)

// Savings returns the current savings state.
func (w *Workspace) Savings() entity.SavingsState {
	return w.savings
}

// SetFund overwrites the emergency fund balance.
func (w *Workspace) SetFund(amount string) (entity.SavingsState, error) {
	value, err := valueobject.ParseAmount(amount)
	if err != nil {
		if errors.Is(err, domainerror.ErrNegativeAmount) {
			return w.savings, domainerror.NewSavingsError(
				domainerror.ErrCodeNegativeFundAmount,
				"emergency fund must not be negative",
				domainerror.ErrNegativeFundAmount,
			)
		}
		return w.savings, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidFundAmount,
			"emergency fund must be a number",
			errors.Join(domainerror.ErrInvalidFundAmount, err),
		)
	}

	w.savings.EmergencyFund = value
	return w.savings, nil
}

// SetGoal overwrites the emergency fund goal. Only values greater than zero are accepted.
func (w *Workspace) SetGoal(amount string) (entity.SavingsState, error) {
	value, err := valueobject.ParseSignedAmount(amount)
	if err != nil || !value.IsPositive() {
		return w.savings, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal must be a number greater than zero",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	w.savings.EmergencyFundGoal = value
	return w.savings, nil
}

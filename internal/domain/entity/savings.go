package entity

import "github.com/shopspring/decimal"

// DefaultEmergencyFundGoal is the goal a new session starts with.
var DefaultEmergencyFundGoal = decimal.NewFromInt(1000)

// SavingsState is the singleton emergency-fund record of a session.
// EmergencyFund is overwritten absolutely; no history is kept.
type SavingsState struct {
	EmergencyFund     decimal.Decimal
	EmergencyFundGoal decimal.Decimal
}

// NewSavingsState creates a SavingsState with an empty fund and the given goal.
// A non-positive goal falls back to DefaultEmergencyFundGoal.
func NewSavingsState(goal decimal.Decimal) SavingsState {
	if !goal.IsPositive() {
		goal = DefaultEmergencyFundGoal
	}
	return SavingsState{
		EmergencyFund:     decimal.Zero,
		EmergencyFundGoal: goal,
	}
}

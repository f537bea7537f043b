// Package valueobject contains domain value objects for the Eternal Wealth Toolkit.
package valueobject

import "github.com/shopspring/decimal"

// TrackerConfig holds the fixed thresholds the aggregates are computed against.
type TrackerConfig struct {
	// Expenses strictly below this amount count towards money leaks.
	MoneyLeakThreshold decimal.Decimal // 200

	// Goal a new session starts with.
	DefaultGoal decimal.Decimal // 1000

	// Long-term emergency fund milestone shown on the dashboard.
	Milestone decimal.Decimal // 20000
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		MoneyLeakThreshold: decimal.NewFromInt(200),
		DefaultGoal:        decimal.NewFromInt(1000),
		Milestone:          decimal.NewFromInt(20000),
	}
}

// IsMoneyLeak checks if a single expense is small enough to count as a money leak.
func (c TrackerConfig) IsMoneyLeak(amount decimal.Decimal) bool {
	return amount.LessThan(c.MoneyLeakThreshold)
}

// WithOverrides returns a copy where every positive override replaces the default.
func (c TrackerConfig) WithOverrides(defaultGoal, milestone decimal.Decimal) TrackerConfig {
	if defaultGoal.IsPositive() {
		c.DefaultGoal = defaultGoal
	}
	if milestone.IsPositive() {
		c.Milestone = milestone
	}
	return c
}

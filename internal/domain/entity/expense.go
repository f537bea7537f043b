package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEntry represents a single expense record logged during a session.
type ExpenseEntry struct {
	ID          uuid.UUID
	Category    string
	Description string // Optional
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// NewExpenseEntry creates a new ExpenseEntry entity.
func NewExpenseEntry(category, description string, amount decimal.Decimal) *ExpenseEntry {
	return &ExpenseEntry{
		ID:          uuid.New(),
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   time.Now().UTC(),
	}
}

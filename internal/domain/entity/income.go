// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEntry represents a single income record logged during a session.
type IncomeEntry struct {
	ID        uuid.UUID
	Source    string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// NewIncomeEntry creates a new IncomeEntry entity.
// Validation of source and amount happens in the workspace before this is called.
func NewIncomeEntry(source string, amount decimal.Decimal) *IncomeEntry {
	return &IncomeEntry{
		ID:        uuid.New(),
		Source:    source,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}

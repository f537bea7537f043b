package entity

import (
	"time"

	"github.com/google/uuid"
)

// AutomationStatus represents whether an automation habit is running or only planned.
type AutomationStatus string

const (
	AutomationStatusActive  AutomationStatus = "Active"
	AutomationStatusPlanned AutomationStatus = "Planned"
)

// IsValid reports whether the status is one of the known values.
func (s AutomationStatus) IsValid() bool {
	return s == AutomationStatusActive || s == AutomationStatusPlanned
}

// Toggled returns the opposite status.
func (s AutomationStatus) Toggled() AutomationStatus {
	if s == AutomationStatusActive {
		return AutomationStatusPlanned
	}
	return AutomationStatusActive
}

// AutomationEntry represents an automated savings habit such as a recurring transfer.
type AutomationEntry struct {
	ID              uuid.UUID
	Method          string
	AmountFrequency string
	Status          AutomationStatus
	CreatedAt       time.Time
}

// NewAutomationEntry creates a new AutomationEntry. New automations start Active.
func NewAutomationEntry(method, amountFrequency string) *AutomationEntry {
	return &AutomationEntry{
		ID:              uuid.New(),
		Method:          method,
		AmountFrequency: amountFrequency,
		Status:          AutomationStatusActive,
		CreatedAt:       time.Now().UTC(),
	}
}

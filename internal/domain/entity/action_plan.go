package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActionStatus represents the progress of an action-plan step.
type ActionStatus string

const (
	ActionStatusPlanned   ActionStatus = "Planned"
	ActionStatusCompleted ActionStatus = "Completed"
)

// IsValid reports whether the status is one of the known values.
func (s ActionStatus) IsValid() bool {
	return s == ActionStatusPlanned || s == ActionStatusCompleted
}

// Toggled returns the opposite status.
func (s ActionStatus) Toggled() ActionStatus {
	if s == ActionStatusPlanned {
		return ActionStatusCompleted
	}
	return ActionStatusPlanned
}

// ActionPlanEntry represents a step of the user's 30-day action plan.
type ActionPlanEntry struct {
	ID        uuid.UUID
	Step      string
	Timeline  string
	Status    ActionStatus
	CreatedAt time.Time
}

// NewActionPlanEntry creates a new ActionPlanEntry. New steps start Planned.
func NewActionPlanEntry(step, timeline string) *ActionPlanEntry {
	return &ActionPlanEntry{
		ID:        uuid.New(),
		Step:      step,
		Timeline:  timeline,
		Status:    ActionStatusPlanned,
		CreatedAt: time.Now().UTC(),
	}
}

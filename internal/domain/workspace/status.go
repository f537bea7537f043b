package workspace

import (
	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

// AddAutomation appends an automation habit in the Active state.
func (w *Workspace) AddAutomation(method, amountFrequency string) (entity.AutomationEntry, error) {
	method, err := requiredText("method", method)
	if err != nil {
		return entity.AutomationEntry{}, err
	}
	amountFrequency, err = requiredText("amount_frequency", amountFrequency)
	if err != nil {
		return entity.AutomationEntry{}, err
	}

	entry := entity.NewAutomationEntry(method, amountFrequency)
	w.automations = append(w.automations, *entry)
	return *entry, nil
}

// ToggleAutomation flips the automation between Active and Planned.
func (w *Workspace) ToggleAutomation(id uuid.UUID) (entity.AutomationEntry, bool) {
	for i := range w.automations {
		if w.automations[i].ID == id {
			w.automations[i].Status = w.automations[i].Status.Toggled()
			return w.automations[i], true
		}
	}
	return entity.AutomationEntry{}, false
}

// SetAutomationStatus sets the automation status. An invalid status is a
// validation error even when the id is unknown.
func (w *Workspace) SetAutomationStatus(id uuid.UUID, status entity.AutomationStatus) (entity.AutomationEntry, bool, error) {
	if !status.IsValid() {
		return entity.AutomationEntry{}, false, invalidStatus("status must be Active or Planned")
	}

	for i := range w.automations {
		if w.automations[i].ID == id {
			w.automations[i].Status = status
			return w.automations[i], true, nil
		}
	}
	return entity.AutomationEntry{}, false, nil
}

// Automations returns the automation entries in insertion order.
func (w *Workspace) Automations() []entity.AutomationEntry {
	return cloneSlice(w.automations)
}

// AddActionStep appends an action-plan step in the Planned state.
func (w *Workspace) AddActionStep(step, timeline string) (entity.ActionPlanEntry, error) {
	step, err := requiredText("step", step)
	if err != nil {
		return entity.ActionPlanEntry{}, err
	}
	timeline, err = requiredText("timeline", timeline)
	if err != nil {
		return entity.ActionPlanEntry{}, err
	}

	entry := entity.NewActionPlanEntry(step, timeline)
	w.actionPlan = append(w.actionPlan, *entry)
	return *entry, nil
}

// ToggleActionStep flips the step between Planned and Completed.
func (w *Workspace) ToggleActionStep(id uuid.UUID) (entity.ActionPlanEntry, bool) {
	for i := range w.actionPlan {
		if w.actionPlan[i].ID == id {
			w.actionPlan[i].Status = w.actionPlan[i].Status.Toggled()
			return w.actionPlan[i], true
		}
	}
	return entity.ActionPlanEntry{}, false
}

// SetActionStepStatus sets the step status.
func (w *Workspace) SetActionStepStatus(id uuid.UUID, status entity.ActionStatus) (entity.ActionPlanEntry, bool, error) {
	if !status.IsValid() {
		return entity.ActionPlanEntry{}, false, invalidStatus("status must be Planned or Completed")
	}

	for i := range w.actionPlan {
		if w.actionPlan[i].ID == id {
			w.actionPlan[i].Status = status
			return w.actionPlan[i], true, nil
		}
	}
	return entity.ActionPlanEntry{}, false, nil
}

// ActionPlan returns the action-plan steps in insertion order.
func (w *Workspace) ActionPlan() []entity.ActionPlanEntry {
	return cloneSlice(w.actionPlan)
}

func invalidStatus(message string) error {
	return domainerror.NewEntryError(
		domainerror.ErrCodeInvalidStatus,
		"status",
		message,
		domainerror.ErrInvalidStatus,
	)
}

package dto

import (
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/actionplan"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// AddActionStepRequest represents the request body for adding an action step.
type AddActionStepRequest struct {
	Step     string `json:"step"`
	Timeline string `json:"timeline"`
}

// ActionStepResponse represents a single action step in API responses.
type ActionStepResponse struct {
	ID        string    `json:"id"`
	Step      string    `json:"step"`
	Timeline  string    `json:"timeline"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ActionPlanResponse represents the action plan with its completion.
type ActionPlanResponse struct {
	Steps          []ActionStepResponse `json:"steps"`
	Completed      int                  `json:"completed"`
	Total          int                  `json:"total"`
	Percent        string               `json:"percent"`
	RoundedPercent int64                `json:"rounded_percent"`
}

// ToActionStepResponse converts a domain ActionPlanEntry to an ActionStepResponse DTO.
func ToActionStepResponse(e entity.ActionPlanEntry) ActionStepResponse {
	return ActionStepResponse{
		ID:        e.ID.String(),
		Step:      e.Step,
		Timeline:  e.Timeline,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

// ToActionPlanResponse converts a ListActionPlanOutput to an ActionPlanResponse DTO.
func ToActionPlanResponse(output *actionplan.ListActionPlanOutput) ActionPlanResponse {
	steps := make([]ActionStepResponse, len(output.Entries))
	for i, e := range output.Entries {
		steps[i] = ToActionStepResponse(e)
	}
	return ActionPlanResponse{
		Steps:          steps,
		Completed:      output.Completed,
		Total:          len(output.Entries),
		Percent:        output.Progress.Percent.StringFixed(2),
		RoundedPercent: output.Progress.RoundedPercent(),
	}
}

package dto

import (
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/automation"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// AddAutomationRequest represents the request body for adding an automation.
type AddAutomationRequest struct {
	Method          string `json:"method"`
	AmountFrequency string `json:"amount_frequency"`
}

// SetStatusRequest represents the request body for setting an entry status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// AutomationResponse represents a single automation in API responses.
type AutomationResponse struct {
	ID              string    `json:"id"`
	Method          string    `json:"method"`
	AmountFrequency string    `json:"amount_frequency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// AutomationListResponse represents the response for listing automations.
type AutomationListResponse struct {
	Automations []AutomationResponse `json:"automations"`
	Active      int                  `json:"active"`
	Planned     int                  `json:"planned"`
}

// ToAutomationResponse converts a domain AutomationEntry to an AutomationResponse DTO.
func ToAutomationResponse(e entity.AutomationEntry) AutomationResponse {
	return AutomationResponse{
		ID:              e.ID.String(),
		Method:          e.Method,
		AmountFrequency: e.AmountFrequency,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt,
	}
}

// ToAutomationListResponse converts a ListAutomationsOutput to an AutomationListResponse DTO.
func ToAutomationListResponse(output *automation.ListAutomationsOutput) AutomationListResponse {
	entries := make([]AutomationResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = ToAutomationResponse(e)
	}
	return AutomationListResponse{
		Automations: entries,
		Active:      output.Active,
		Planned:     output.Planned,
	}
}

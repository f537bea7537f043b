package dto

import (
	"github.com/eternal-wealth/toolkit/internal/application/usecase/checklist"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// ChecklistItemResponse represents one catalog item.
type ChecklistItemResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// ChecklistResponse represents one catalog with its completion.
type ChecklistResponse struct {
	Kind           string                  `json:"kind"`
	Items          []ChecklistItemResponse `json:"items"`
	Checked        int                     `json:"checked"`
	Total          int                     `json:"total"`
	Percent        string                  `json:"percent"`
	RoundedPercent int64                   `json:"rounded_percent"`
	Complete       bool                    `json:"complete"`
	ChallengeTotal *MoneyResponse          `json:"challenge_total,omitempty"`
}

// ChecklistListResponse represents every catalog.
type ChecklistListResponse struct {
	Checklists []ChecklistResponse `json:"checklists"`
}

// ToggleItemResponse represents the result of toggling a checklist item.
type ToggleItemResponse struct {
	Item      ChecklistItemResponse `json:"item"`
	Checklist ChecklistResponse     `json:"checklist"`
}

// ToChecklistItemResponse converts a domain ChecklistItem to a ChecklistItemResponse DTO.
func ToChecklistItemResponse(item entity.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		Key:     item.Key,
		Label:   item.Label,
		Checked: item.Checked,
	}
}

// ToChecklistResponse converts a ChecklistView to a ChecklistResponse DTO.
func ToChecklistResponse(view checklist.ChecklistView, f *MoneyFormatter) ChecklistResponse {
	items := make([]ChecklistItemResponse, len(view.Checklist.Items))
	for i, item := range view.Checklist.Items {
		items[i] = ToChecklistItemResponse(item)
	}

	response := ChecklistResponse{
		Kind:           string(view.Checklist.Kind),
		Items:          items,
		Checked:        view.Checklist.CheckedCount(),
		Total:          len(items),
		Percent:        view.Completion.Percent.StringFixed(2),
		RoundedPercent: view.Completion.RoundedPercent(),
		Complete:       view.Completion.Complete,
	}

	if view.ChallengeTotal != nil {
		total := f.Money(*view.ChallengeTotal)
		response.ChallengeTotal = &total
	}

	return response
}

// ToChecklistListResponse converts a ListChecklistsOutput to a ChecklistListResponse DTO.
func ToChecklistListResponse(output *checklist.ListChecklistsOutput, f *MoneyFormatter) ChecklistListResponse {
	lists := make([]ChecklistResponse, len(output.Checklists))
	for i, view := range output.Checklists {
		lists[i] = ToChecklistResponse(view, f)
	}
	return ChecklistListResponse{Checklists: lists}
}

// ToToggleItemResponse converts a ToggleItemOutput to a ToggleItemResponse DTO.
func ToToggleItemResponse(output *checklist.ToggleItemOutput, f *MoneyFormatter) ToggleItemResponse {
	return ToggleItemResponse{
		Item:      ToChecklistItemResponse(output.Item),
		Checklist: ToChecklistResponse(output.Checklist, f),
	}
}

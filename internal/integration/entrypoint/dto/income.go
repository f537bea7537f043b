package dto

import (
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/income"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// AddIncomeRequest represents the request body for adding income.
type AddIncomeRequest struct {
	Source string `json:"source"`
	Amount string `json:"amount"`
}

// IncomeResponse represents a single income entry in API responses.
type IncomeResponse struct {
	ID        string        `json:"id"`
	Source    string        `json:"source"`
	Amount    MoneyResponse `json:"amount"`
	CreatedAt time.Time     `json:"created_at"`
}

// IncomeListResponse represents the response for listing income.
type IncomeListResponse struct {
	Income []IncomeResponse `json:"income"`
	Total  MoneyResponse    `json:"total"`
}

// ToIncomeResponse converts a domain IncomeEntry to an IncomeResponse DTO.
func ToIncomeResponse(e entity.IncomeEntry, f *MoneyFormatter) IncomeResponse {
	return IncomeResponse{
		ID:        e.ID.String(),
		Source:    e.Source,
		Amount:    f.Money(e.Amount),
		CreatedAt: e.CreatedAt,
	}
}

// ToIncomeListResponse converts a ListIncomeOutput to an IncomeListResponse DTO.
func ToIncomeListResponse(output *income.ListIncomeOutput, f *MoneyFormatter) IncomeListResponse {
	entries := make([]IncomeResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = ToIncomeResponse(e, f)
	}
	return IncomeListResponse{
		Income: entries,
		Total:  f.Money(output.Total),
	}
}

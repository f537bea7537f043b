package dto

import (
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/noiselife"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// AddNoiseLifeRequest represents the request body for adding a noise/life item.
type AddNoiseLifeRequest struct {
	Item string `json:"item"`
	Type string `json:"type,omitempty"`
}

// NoiseLifeResponse represents a single noise/life item in API responses.
type NoiseLifeResponse struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// NoiseLifeListResponse represents the response for listing noise/life items.
type NoiseLifeListResponse struct {
	Items      []NoiseLifeResponse `json:"items"`
	NoiseCount int                 `json:"noise_count"`
	LifeCount  int                 `json:"life_count"`
}

// ToNoiseLifeResponse converts a domain NoiseLifeEntry to a NoiseLifeResponse DTO.
func ToNoiseLifeResponse(e entity.NoiseLifeEntry) NoiseLifeResponse {
	return NoiseLifeResponse{
		ID:        e.ID.String(),
		Item:      e.Item,
		Type:      string(e.Type),
		CreatedAt: e.CreatedAt,
	}
}

// ToNoiseLifeListResponse converts a ListNoiseLifeOutput to a NoiseLifeListResponse DTO.
func ToNoiseLifeListResponse(output *noiselife.ListNoiseLifeOutput) NoiseLifeListResponse {
	items := make([]NoiseLifeResponse, len(output.Entries))
	for i, e := range output.Entries {
		items[i] = ToNoiseLifeResponse(e)
	}
	return NoiseLifeListResponse{
		Items:      items,
		NoiseCount: output.NoiseCount,
		LifeCount:  output.LifeCount,
	}
}

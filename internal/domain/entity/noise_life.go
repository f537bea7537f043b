package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoiseLifeType classifies discretionary spending as noise (cuttable) or life (valued).
type NoiseLifeType string

const (
	NoiseLifeTypeNoise NoiseLifeType = "noise"
	NoiseLifeTypeLife  NoiseLifeType = "life"
)

// DefaultNoiseLifeType is used when an entry is added without a type.
const DefaultNoiseLifeType = NoiseLifeTypeNoise

// IsValid reports whether the type is one of the known values.
func (t NoiseLifeType) IsValid() bool {
	return t == NoiseLifeTypeNoise || t == NoiseLifeTypeLife
}

// NoiseLifeEntry represents one classified spending item.
type NoiseLifeEntry struct {
	ID        uuid.UUID
	Item      string
	Type      NoiseLifeType
	CreatedAt time.Time
}

// NewNoiseLifeEntry creates a new NoiseLifeEntry entity.
func NewNoiseLifeEntry(item string, entryType NoiseLifeType) *NoiseLifeEntry {
	return &NoiseLifeEntry{
		ID:        uuid.New(),
		Item:      item,
		Type:      entryType,
		CreatedAt: time.Now().UTC(),
	}
}

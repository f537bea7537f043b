// Package catalog holds the static checklist catalogs every session is seeded with.
package catalog

import (
	"fmt"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// ChallengeDays is the length of the cumulative savings challenge.
const ChallengeDays = 30

type seed struct {
	key   string
	label string
}

// New returns a fresh, fully unchecked copy of the catalog for kind.
// The second return value is false for an unknown kind.
func New(kind entity.ChecklistKind) (entity.Checklist, bool) {
	var seeds []seed

	switch kind {
	case entity.ChecklistKindSavingsMethods:
		seeds = savingsMethods
	case entity.ChecklistKindAutomationStrategies:
		seeds = automationStrategies
	case entity.ChecklistKindChallenge:
		seeds = challengeSeeds()
	case entity.ChecklistKindPrayerCalendar:
		seeds = prayerSeeds()
	default:
		return entity.Checklist{}, false
	}

	items := make([]entity.ChecklistItem, len(seeds))
	for i, s := range seeds {
		items[i] = entity.ChecklistItem{Key: s.key, Label: s.label}
	}

	return entity.Checklist{Kind: kind, Items: items}, true
}

// All returns fresh copies of every catalog keyed by kind.
func All() map[entity.ChecklistKind]entity.Checklist {
	lists := make(map[entity.ChecklistKind]entity.Checklist, len(entity.ChecklistKinds))
	for _, kind := range entity.ChecklistKinds {
		list, _ := New(kind)
		lists[kind] = list
	}
	return lists
}

// DayKey returns the item key for a 1-based calendar day.
func DayKey(day int) string {
	return fmt.Sprintf("day-%d", day)
}

func challengeSeeds() []seed {
	seeds := make([]seed, ChallengeDays)
	for i := range seeds {
		day := i + 1
		seeds[i] = seed{key: DayKey(day), label: fmt.Sprintf("Day %d: save $%d", day, day)}
	}
	return seeds
}

func prayerSeeds() []seed {
	seeds := make([]seed, len(prayers))
	for i, text := range prayers {
		day := i + 1
		seeds[i] = seed{key: DayKey(day), label: fmt.Sprintf("Day %d: %s", day, text)}
	}
	return seeds
}

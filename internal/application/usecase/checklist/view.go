// Package checklist contains use cases for the fixed checklist catalogs.
package checklist

import (
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// ChecklistView is a catalog with its derived completion figures.
type ChecklistView struct {
	Checklist  entity.Checklist
	Completion aggregate.Progress

	// ChallengeTotal is only set for the cumulative savings challenge.
	ChallengeTotal *decimal.Decimal
}

// NewChecklistView derives the completion figures of a checklist.
func NewChecklistView(list entity.Checklist) ChecklistView {
	view := ChecklistView{
		Checklist:  list,
		Completion: aggregate.ChecklistCompletion(&list),
	}

	if list.Kind == entity.ChecklistKindChallenge {
		total := aggregate.ChallengeTotal(list.Flags())
		view.ChallengeTotal = &total
	}

	return view
}

// Package workspace owns all mutable state of a single session.
//
// A Workspace is changed only through its methods. Every mutating method
// validates its input first and returns a coded domain error without touching
// any collection when validation fails, so a rejected call never leaves a
// partial entry behind. Lookups by an unknown id report found=false instead of
// failing.
package workspace

import (
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/catalog"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// Workspace is the record store, savings state and checklist state of one session.
// It is not safe for concurrent use; callers serialize access per session.
type Workspace struct {
	income      []entity.IncomeEntry
	expenses    []entity.ExpenseEntry
	savings     entity.SavingsState
	automations []entity.AutomationEntry
	noiseLife   []entity.NoiseLifeEntry
	actionPlan  []entity.ActionPlanEntry
	checklists  map[entity.ChecklistKind]*entity.Checklist
}

// Snapshot is a detached copy of a Workspace suitable for storage.
// Checklists are reduced to the keys of their checked items.
type Snapshot struct {
	Income      []entity.IncomeEntry
	Expenses    []entity.ExpenseEntry
	Savings     entity.SavingsState
	Automations []entity.AutomationEntry
	NoiseLife   []entity.NoiseLifeEntry
	ActionPlan  []entity.ActionPlanEntry
	Checked     map[entity.ChecklistKind][]string
}

// New creates an empty Workspace with every catalog unchecked.
// A non-positive defaultGoal falls back to entity.DefaultEmergencyFundGoal.
func New(defaultGoal decimal.Decimal) *Workspace {
	ws := &Workspace{
		income:      []entity.IncomeEntry{},
		expenses:    []entity.ExpenseEntry{},
		savings:     entity.NewSavingsState(defaultGoal),
		automations: []entity.AutomationEntry{},
		noiseLife:   []entity.NoiseLifeEntry{},
		actionPlan:  []entity.ActionPlanEntry{},
		checklists:  make(map[entity.ChecklistKind]*entity.Checklist, len(entity.ChecklistKinds)),
	}

	for kind, list := range catalog.All() {
		ws.checklists[kind] = &list
	}

	return ws
}

// Snapshot returns a deep copy of the workspace state.
func (w *Workspace) Snapshot() Snapshot {
	checked := make(map[entity.ChecklistKind][]string, len(w.checklists))
	for kind, list := range w.checklists {
		keys := make([]string, 0, list.CheckedCount())
		for _, item := range list.Items {
			if item.Checked {
				keys = append(keys, item.Key)
			}
		}
		checked[kind] = keys
	}

	return Snapshot{
		Income:      cloneSlice(w.income),
		Expenses:    cloneSlice(w.expenses),
		Savings:     w.savings,
		Automations: cloneSlice(w.automations),
		NoiseLife:   cloneSlice(w.noiseLife),
		ActionPlan:  cloneSlice(w.actionPlan),
		Checked:     checked,
	}
}

// Restore rebuilds a Workspace from a snapshot. Checklist keys that are no
// longer part of a catalog are ignored.
func Restore(s Snapshot) *Workspace {
	ws := New(s.Savings.EmergencyFundGoal)
	ws.savings.EmergencyFund = s.Savings.EmergencyFund

	ws.income = cloneSlice(s.Income)
	ws.expenses = cloneSlice(s.Expenses)
	ws.automations = cloneSlice(s.Automations)
	ws.noiseLife = cloneSlice(s.NoiseLife)
	ws.actionPlan = cloneSlice(s.ActionPlan)

	for kind, keys := range s.Checked {
		list, ok := ws.checklists[kind]
		if !ok {
			continue
		}
		for _, key := range keys {
			if i := indexOfKey(list, key); i >= 0 {
				list.Items[i].Checked = true
			}
		}
	}

	return ws
}

// Clone returns an independent copy of the workspace.
func (w *Workspace) Clone() *Workspace {
	return Restore(w.Snapshot())
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

package workspace

import (
	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

// AddIncome appends an income entry.
func (w *Workspace) AddIncome(source, amount string) (entity.IncomeEntry, error) {
	source, err := requiredText("source", source)
	if err != nil {
		return entity.IncomeEntry{}, err
	}
	value, err := entryAmount("amount", amount)
	if err != nil {
		return entity.IncomeEntry{}, err
	}

	entry := entity.NewIncomeEntry(source, value)
	w.income = append(w.income, *entry)
	return *entry, nil
}

// RemoveIncome deletes the income entry with id and reports whether it existed.
func (w *Workspace) RemoveIncome(id uuid.UUID) bool {
	var found bool
	w.income, found = removeByID(w.income, id, func(e entity.IncomeEntry) uuid.UUID { return e.ID })
	return found
}

// Income returns the income entries in insertion order.
func (w *Workspace) Income() []entity.IncomeEntry {
	return cloneSlice(w.income)
}

// AddExpense appends an expense entry. The description is optional.
func (w *Workspace) AddExpense(category, description, amount string) (entity.ExpenseEntry, error) {
	category, err := requiredText("category", category)
	if err != nil {
		return entity.ExpenseEntry{}, err
	}
	description, err = optionalText("description", description)
	if err != nil {
		return entity.ExpenseEntry{}, err
	}
	value, err := entryAmount("amount", amount)
	if err != nil {
		return entity.ExpenseEntry{}, err
	}

	entry := entity.NewExpenseEntry(category, description, value)
	w.expenses = append(w.expenses, *entry)
	return *entry, nil
}

// RemoveExpense deletes the expense entry with id and reports whether it existed.
func (w *Workspace) RemoveExpense(id uuid.UUID) bool {
	var found bool
	w.expenses, found = removeByID(w.expenses, id, func(e entity.ExpenseEntry) uuid.UUID { return e.ID })
	return found
}

// Expenses returns the expense entries in insertion order.
func (w *Workspace) Expenses() []entity.ExpenseEntry {
	return cloneSlice(w.expenses)
}

// AddNoiseLife appends a noise/life classification. An empty type defaults to noise.
func (w *Workspace) AddNoiseLife(item string, entryType entity.NoiseLifeType) (entity.NoiseLifeEntry, error) {
	item, err := requiredText("item", item)
	if err != nil {
		return entity.NoiseLifeEntry{}, err
	}
	if entryType == "" {
		entryType = entity.DefaultNoiseLifeType
	}
	if !entryType.IsValid() {
		return entity.NoiseLifeEntry{}, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryType,
			"type",
			"type must be noise or life",
			domainerror.ErrInvalidEntryType,
		)
	}

	entry := entity.NewNoiseLifeEntry(item, entryType)
	w.noiseLife = append(w.noiseLife, *entry)
	return *entry, nil
}

// RemoveNoiseLife deletes the noise/life entry with id and reports whether it existed.
func (w *Workspace) RemoveNoiseLife(id uuid.UUID) bool {
	var found bool
	w.noiseLife, found = removeByID(w.noiseLife, id, func(e entity.NoiseLifeEntry) uuid.UUID { return e.ID })
	return found
}

// NoiseLife returns the entries of the given type in insertion order, or all
// entries when filter is empty.
func (w *Workspace) NoiseLife(filter entity.NoiseLifeType) []entity.NoiseLifeEntry {
	if filter == "" {
		return cloneSlice(w.noiseLife)
	}

	out := make([]entity.NoiseLifeEntry, 0, len(w.noiseLife))
	for _, e := range w.noiseLife {
		if e.Type == filter {
			out = append(out, e)
		}
	}
	return out
}

func removeByID[T any](entries []T, id uuid.UUID, idOf func(T) uuid.UUID) ([]T, bool) {
	for i, e := range entries {
		if idOf(e) == id {
			out := make([]T, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			out = append(out, entries[i+1:]...)
			return out, true
		}
	}
	return entries, false
}

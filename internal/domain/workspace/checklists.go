package workspace

import (
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

// Checklist returns a copy of the catalog for kind.
func (w *Workspace) Checklist(kind entity.ChecklistKind) (entity.Checklist, error) {
	list, ok := w.checklists[kind]
	if !ok {
		return entity.Checklist{}, unknownChecklist(kind)
	}
	return copyChecklist(list), nil
}

// Checklists returns copies of every catalog in display order.
func (w *Workspace) Checklists() []entity.Checklist {
	out := make([]entity.Checklist, 0, len(entity.ChecklistKinds))
	for _, kind := range entity.ChecklistKinds {
		if list, ok := w.checklists[kind]; ok {
			out = append(out, copyChecklist(list))
		}
	}
	return out
}

// ToggleChecklistItem flips the checked flag of exactly one item. An unknown
// key reports found=false; an unknown kind is a validation error.
func (w *Workspace) ToggleChecklistItem(kind entity.ChecklistKind, key string) (entity.ChecklistItem, bool, error) {
	list, ok := w.checklists[kind]
	if !ok {
		return entity.ChecklistItem{}, false, unknownChecklist(kind)
	}

	i := indexOfKey(list, key)
	if i < 0 {
		return entity.ChecklistItem{}, false, nil
	}

	list.Items[i].Checked = !list.Items[i].Checked
	return list.Items[i], true, nil
}

func indexOfKey(list *entity.Checklist, key string) int {
	for i, item := range list.Items {
		if item.Key == key {
			return i
		}
	}
	return -1
}

func copyChecklist(list *entity.Checklist) entity.Checklist {
	return entity.Checklist{Kind: list.Kind, Items: cloneSlice(list.Items)}
}

func unknownChecklist(kind entity.ChecklistKind) error {
	return domainerror.NewChecklistError(
		domainerror.ErrCodeUnknownChecklist,
		"unknown checklist: "+string(kind),
		domainerror.ErrUnknownChecklist,
	)
}

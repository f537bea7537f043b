package catalog

import (
	"testing"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		kind      entity.ChecklistKind
		wantOK    bool
		wantSize  int
		firstKey  string
		lastLabel string
	}{
		{
			name:     "savings methods",
			kind:     entity.ChecklistKindSavingsMethods,
			wantOK:   true,
			wantSize: 30,
			firstKey: "hysa",
		},
		{
			name:     "automation strategies",
			kind:     entity.ChecklistKindAutomationStrategies,
			wantOK:   true,
			wantSize: 30,
			firstKey: "autoTransfer",
		},
		{
			name:      "challenge",
			kind:      entity.ChecklistKindChallenge,
			wantOK:    true,
			wantSize:  30,
			firstKey:  "day-1",
			lastLabel: "Day 30: save $30",
		},
		{
			name:     "prayer calendar",
			kind:     entity.ChecklistKindPrayerCalendar,
			wantOK:   true,
			wantSize: 30,
			firstKey: "day-1",
		},
		{
			name:   "unknown kind",
			kind:   entity.ChecklistKind("budget"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, ok := New(tt.kind)
			if ok != tt.wantOK {
				t.Fatalf("New() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if len(list.Items) != tt.wantSize {
				t.Errorf("len(Items) = %d, want %d", len(list.Items), tt.wantSize)
			}
			if list.Items[0].Key != tt.firstKey {
				t.Errorf("Items[0].Key = %q, want %q", list.Items[0].Key, tt.firstKey)
			}
			if tt.lastLabel != "" && list.Items[len(list.Items)-1].Label != tt.lastLabel {
				t.Errorf("last label = %q, want %q", list.Items[len(list.Items)-1].Label, tt.lastLabel)
			}
			if list.CheckedCount() != 0 {
				t.Errorf("new catalog has %d checked items", list.CheckedCount())
			}
		})
	}
}

func TestNew_KeysAreUnique(t *testing.T) {
	for kind, list := range All() {
		seen := make(map[string]bool, len(list.Items))
		for _, item := range list.Items {
			if seen[item.Key] {
				t.Errorf("%s: duplicate key %q", kind, item.Key)
			}
			seen[item.Key] = true
		}
	}
}

func TestNew_ReturnsIndependentCopies(t *testing.T) {
	first, _ := New(entity.ChecklistKindChallenge)
	first.Items[0].Checked = true

	second, _ := New(entity.ChecklistKindChallenge)
	if second.Items[0].Checked {
		t.Error("mutating one catalog copy leaked into another")
	}
}

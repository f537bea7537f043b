package workspace

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

func newWorkspace() *Workspace {
	return New(decimal.NewFromInt(1000))
}

func TestAddIncome(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		amount   string
		wantCode domainerror.EntryErrorCode
	}{
		{name: "valid", source: "Salary", amount: "2500.00"},
		{name: "zero amount", source: "Gift", amount: "0"},
		{name: "empty source", source: "", amount: "10", wantCode: domainerror.ErrCodeMissingRequiredField},
		{name: "blank source", source: "   ", amount: "10", wantCode: domainerror.ErrCodeMissingRequiredField},
		{name: "empty amount", source: "Salary", amount: "", wantCode: domainerror.ErrCodeInvalidAmount},
		{name: "non-numeric amount", source: "Salary", amount: "abc", wantCode: domainerror.ErrCodeInvalidAmount},
		{name: "negative amount", source: "Salary", amount: "-5", wantCode: domainerror.ErrCodeNegativeAmount},
		{name: "source too long", source: strings.Repeat("x", MaxTextLength+1), amount: "1", wantCode: domainerror.ErrCodeFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newWorkspace()
			entry, err := ws.AddIncome(tt.source, tt.amount)

			if tt.wantCode != "" {
				var entryErr *domainerror.EntryError
				if !errors.As(err, &entryErr) {
					t.Fatalf("expected EntryError, got %v", err)
				}
				if entryErr.Code != tt.wantCode {
					t.Errorf("code = %s, want %s", entryErr.Code, tt.wantCode)
				}
				if len(ws.Income()) != 0 {
					t.Errorf("rejected add changed the collection: len = %d", len(ws.Income()))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.ID == uuid.Nil {
				t.Error("expected an id to be assigned")
			}
			if len(ws.Income()) != 1 {
				t.Errorf("len = %d, want 1", len(ws.Income()))
			}
		})
	}
}

func TestAdd_LengthAndTotalMatchValidCalls(t *testing.T) {
	ws := newWorkspace()
	inputs := []struct {
		category string
		amount   string
	}{
		{"Food", "12.34"},
		{"", "5"},
		{"Gas", "40"},
		{"Rent", "nope"},
		{"Fun", "-3"},
		{"Coffee", "4.66"},
	}

	valid := 0
	want := decimal.Zero
	for _, in := range inputs {
		if _, err := ws.AddExpense(in.category, "", in.amount); err == nil {
			valid++
			want = want.Add(decimal.RequireFromString(in.amount))
		}
	}

	if valid != 3 {
		t.Fatalf("valid adds = %d, want 3", valid)
	}
	if got := len(ws.Expenses()); got != valid {
		t.Errorf("len = %d, want %d", got, valid)
	}
	if got := aggregate.TotalExpenses(ws.Expenses()); !got.Equal(want) {
		t.Errorf("TotalExpenses = %s, want %s", got, want)
	}
}

func TestAddExpense_OptionalDescription(t *testing.T) {
	ws := newWorkspace()

	entry, err := ws.AddExpense("  Food ", "", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Category != "Food" {
		t.Errorf("Category = %q, want trimmed %q", entry.Category, "Food")
	}
	if entry.Description != "" {
		t.Errorf("Description = %q, want empty", entry.Description)
	}
}

func TestRemove(t *testing.T) {
	ws := newWorkspace()
	first, _ := ws.AddIncome("Salary", "100")
	second, _ := ws.AddIncome("Bonus", "50")

	if ws.RemoveIncome(uuid.New()) {
		t.Error("RemoveIncome(unknown) reported found")
	}
	if len(ws.Income()) != 2 {
		t.Fatalf("unknown id changed the collection")
	}

	if !ws.RemoveIncome(first.ID) {
		t.Fatal("RemoveIncome(first) reported not found")
	}
	income := ws.Income()
	if len(income) != 1 || income[0].ID != second.ID {
		t.Errorf("remaining = %+v, want only %s", income, second.ID)
	}
	if ws.RemoveIncome(first.ID) {
		t.Error("removing twice reported found")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ws := newWorkspace()
	_, _ = ws.AddExpense("Food", "", "10")

	expenses := ws.Expenses()
	expenses[0].Category = "Changed"

	if ws.Expenses()[0].Category != "Food" {
		t.Error("mutating the returned slice changed the workspace")
	}
}

func TestNoiseLife(t *testing.T) {
	ws := newWorkspace()

	defaulted, err := ws.AddNoiseLife("Streaming", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defaulted.Type != entity.NoiseLifeTypeNoise {
		t.Errorf("Type = %s, want noise by default", defaulted.Type)
	}

	if _, err := ws.AddNoiseLife("Gym", entity.NoiseLifeTypeLife); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ws.AddNoiseLife("Thing", entity.NoiseLifeType("maybe"))
	if !errors.Is(err, domainerror.ErrInvalidEntryType) {
		t.Errorf("invalid type error = %v, want ErrInvalidEntryType", err)
	}

	if got := len(ws.NoiseLife("")); got != 2 {
		t.Errorf("all = %d, want 2", got)
	}
	if got := ws.NoiseLife(entity.NoiseLifeTypeLife); len(got) != 1 || got[0].Item != "Gym" {
		t.Errorf("life filter = %+v", got)
	}

	if !ws.RemoveNoiseLife(defaulted.ID) {
		t.Error("RemoveNoiseLife reported not found")
	}
	if got := len(ws.NoiseLife(entity.NoiseLifeTypeNoise)); got != 0 {
		t.Errorf("noise after remove = %d, want 0", got)
	}
}

func TestAutomationStatus(t *testing.T) {
	ws := newWorkspace()

	_, err := ws.AddAutomation("Auto transfer", "")
	if !errors.Is(err, domainerror.ErrMissingRequiredField) {
		t.Fatalf("missing frequency error = %v", err)
	}

	entry, err := ws.AddAutomation("Auto transfer", "$100 / month")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != entity.AutomationStatusActive {
		t.Errorf("initial status = %s, want Active", entry.Status)
	}

	toggled, found := ws.ToggleAutomation(entry.ID)
	if !found || toggled.Status != entity.AutomationStatusPlanned {
		t.Errorf("toggle = (%s, %v), want (Planned, true)", toggled.Status, found)
	}

	if _, found := ws.ToggleAutomation(uuid.New()); found {
		t.Error("toggle unknown id reported found")
	}

	set, found, err := ws.SetAutomationStatus(entry.ID, entity.AutomationStatusActive)
	if err != nil || !found || set.Status != entity.AutomationStatusActive {
		t.Errorf("set = (%s, %v, %v)", set.Status, found, err)
	}

	_, _, err = ws.SetAutomationStatus(entry.ID, entity.AutomationStatus("Paused"))
	if !errors.Is(err, domainerror.ErrInvalidStatus) {
		t.Errorf("invalid status error = %v", err)
	}
	if ws.Automations()[0].Status != entity.AutomationStatusActive {
		t.Error("invalid status changed the entry")
	}
}

func TestActionPlanStatus(t *testing.T) {
	ws := newWorkspace()

	entry, err := ws.AddActionStep("Ask for a raise", "Week 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != entity.ActionStatusPlanned {
		t.Errorf("initial status = %s, want Planned", entry.Status)
	}

	toggled, _ := ws.ToggleActionStep(entry.ID)
	if toggled.Status != entity.ActionStatusCompleted {
		t.Errorf("after toggle = %s, want Completed", toggled.Status)
	}
	toggled, _ = ws.ToggleActionStep(entry.ID)
	if toggled.Status != entity.ActionStatusPlanned {
		t.Errorf("after second toggle = %s, want Planned", toggled.Status)
	}

	if _, found, err := ws.SetActionStepStatus(uuid.New(), entity.ActionStatusCompleted); found || err != nil {
		t.Errorf("set unknown = (%v, %v), want (false, nil)", found, err)
	}
}

func TestSavings(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(ws *Workspace) error
		wantFund string
		wantGoal string
		wantErr  error
	}{
		{
			name:     "defaults",
			apply:    func(ws *Workspace) error { return nil },
			wantFund: "0",
			wantGoal: "1000",
		},
		{
			name:     "set fund overwrites",
			apply:    func(ws *Workspace) error { _, _ = ws.SetFund("300"); _, err := ws.SetFund("250.50"); return err },
			wantFund: "250.50",
			wantGoal: "1000",
		},
		{
			name:     "set fund rejects text",
			apply:    func(ws *Workspace) error { _, err := ws.SetFund("lots"); return err },
			wantFund: "0",
			wantGoal: "1000",
			wantErr:  domainerror.ErrInvalidFundAmount,
		},
		{
			name:     "set fund rejects negative",
			apply:    func(ws *Workspace) error { _, err := ws.SetFund("-1"); return err },
			wantFund: "0",
			wantGoal: "1000",
			wantErr:  domainerror.ErrNegativeFundAmount,
		},
		{
			name:     "set goal",
			apply:    func(ws *Workspace) error { _, err := ws.SetGoal("5000"); return err },
			wantFund: "0",
			wantGoal: "5000",
		},
		{
			name:     "set goal rejects negative",
			apply:    func(ws *Workspace) error { _, err := ws.SetGoal("-5"); return err },
			wantFund: "0",
			wantGoal: "1000",
			wantErr:  domainerror.ErrInvalidGoalAmount,
		},
		{
			name:     "set goal rejects zero",
			apply:    func(ws *Workspace) error { _, err := ws.SetGoal("0"); return err },
			wantFund: "0",
			wantGoal: "1000",
			wantErr:  domainerror.ErrInvalidGoalAmount,
		},
		{
			name:     "set goal rejects text after a valid goal",
			apply:    func(ws *Workspace) error { _, _ = ws.SetGoal("750"); _, err := ws.SetGoal("abc"); return err },
			wantFund: "0",
			wantGoal: "750",
			wantErr:  domainerror.ErrInvalidGoalAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := newWorkspace()
			err := tt.apply(ws)

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			s := ws.Savings()
			if !s.EmergencyFund.Equal(decimal.RequireFromString(tt.wantFund)) {
				t.Errorf("EmergencyFund = %s, want %s", s.EmergencyFund, tt.wantFund)
			}
			if !s.EmergencyFundGoal.Equal(decimal.RequireFromString(tt.wantGoal)) {
				t.Errorf("EmergencyFundGoal = %s, want %s", s.EmergencyFundGoal, tt.wantGoal)
			}
		})
	}
}

func TestToggleChecklistItem(t *testing.T) {
	ws := newWorkspace()

	item, found, err := ws.ToggleChecklistItem(entity.ChecklistKindSavingsMethods, "hysa")
	if err != nil || !found || !item.Checked {
		t.Fatalf("first toggle = (%+v, %v, %v)", item, found, err)
	}

	list, _ := ws.Checklist(entity.ChecklistKindSavingsMethods)
	if list.CheckedCount() != 1 {
		t.Errorf("CheckedCount = %d, want exactly 1", list.CheckedCount())
	}

	item, _, _ = ws.ToggleChecklistItem(entity.ChecklistKindSavingsMethods, "hysa")
	if item.Checked {
		t.Error("toggling twice did not restore the original flag")
	}

	if _, found, err := ws.ToggleChecklistItem(entity.ChecklistKindChallenge, "day-31"); found || err != nil {
		t.Errorf("unknown key = (%v, %v), want (false, nil)", found, err)
	}

	_, _, err = ws.ToggleChecklistItem(entity.ChecklistKind("nope"), "day-1")
	if !errors.Is(err, domainerror.ErrUnknownChecklist) {
		t.Errorf("unknown kind error = %v", err)
	}

	for _, list := range ws.Checklists() {
		if len(list.Items) != 30 {
			t.Errorf("%s has %d items, want 30", list.Kind, len(list.Items))
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	ws := newWorkspace()
	income, _ := ws.AddIncome("Salary", "3000")
	_, _ = ws.AddExpense("Food", "Groceries", "120.50")
	_, _ = ws.SetFund("400")
	_, _ = ws.SetGoal("2000")
	auto, _ := ws.AddAutomation("Transfer", "$50 weekly")
	ws.ToggleAutomation(auto.ID)
	_, _ = ws.AddNoiseLife("Gym", entity.NoiseLifeTypeLife)
	_, _ = ws.AddActionStep("Side hustle", "Month 1")
	_, _, _ = ws.ToggleChecklistItem(entity.ChecklistKindChallenge, "day-3")

	restored := Restore(ws.Snapshot())

	if got := restored.Income(); len(got) != 1 || got[0].ID != income.ID {
		t.Errorf("income not restored: %+v", got)
	}
	if got := restored.Savings(); !got.EmergencyFund.Equal(decimal.NewFromInt(400)) || !got.EmergencyFundGoal.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("savings not restored: %+v", got)
	}
	if got := restored.Automations(); got[0].Status != entity.AutomationStatusPlanned {
		t.Errorf("automation status not restored: %s", got[0].Status)
	}
	list, _ := restored.Checklist(entity.ChecklistKindChallenge)
	if !list.Items[2].Checked || list.CheckedCount() != 1 {
		t.Errorf("checklist not restored: %d checked", list.CheckedCount())
	}

	// the restored copy is independent
	restored.RemoveIncome(income.ID)
	if len(ws.Income()) != 1 {
		t.Error("mutating the restored workspace changed the original")
	}
}

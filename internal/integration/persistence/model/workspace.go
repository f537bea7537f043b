package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// WorkspaceDocument is the JSON form of a workspace snapshot shared by the
// redis and sqlite backends. Amounts are stored as decimal strings.
type WorkspaceDocument struct {
	Income      []IncomeDocument     `json:"income"`
	Expenses    []ExpenseDocument    `json:"expenses"`
	Savings     SavingsDocument      `json:"savings"`
	Automations []AutomationDocument `json:"automations"`
	NoiseLife   []NoiseLifeDocument  `json:"noise_life"`
	ActionPlan  []ActionPlanDocument `json:"action_plan"`
	Checked     map[string][]string  `json:"checked"`
}

// IncomeDocument is the stored form of an income entry.
type IncomeDocument struct {
	ID        uuid.UUID       `json:"id"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseDocument is the stored form of an expense entry.
type ExpenseDocument struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SavingsDocument is the stored form of the savings state.
type SavingsDocument struct {
	EmergencyFund     decimal.Decimal `json:"emergency_fund"`
	EmergencyFundGoal decimal.Decimal `json:"emergency_fund_goal"`
}

// AutomationDocument is the stored form of an automation entry.
type AutomationDocument struct {
	ID              uuid.UUID `json:"id"`
	Method          string    `json:"method"`
	AmountFrequency string    `json:"amount_frequency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NoiseLifeDocument is the stored form of a noise/life entry.
type NoiseLifeDocument struct {
	ID        uuid.UUID `json:"id"`
	Item      string    `json:"item"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// ActionPlanDocument is the stored form of an action-plan step.
type ActionPlanDocument struct {
	ID        uuid.UUID `json:"id"`
	Step      string    `json:"step"`
	Timeline  string    `json:"timeline"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkspaceFromEntity creates a WorkspaceDocument from a domain workspace.
func WorkspaceFromEntity(ws *workspace.Workspace) *WorkspaceDocument {
	s := ws.Snapshot()

	doc := &WorkspaceDocument{
		Income:      make([]IncomeDocument, len(s.Income)),
		Expenses:    make([]ExpenseDocument, len(s.Expenses)),
		Automations: make([]AutomationDocument, len(s.Automations)),
		NoiseLife:   make([]NoiseLifeDocument, len(s.NoiseLife)),
		ActionPlan:  make([]ActionPlanDocument, len(s.ActionPlan)),
		Savings: SavingsDocument{
			EmergencyFund:     s.Savings.EmergencyFund,
			EmergencyFundGoal: s.Savings.EmergencyFundGoal,
		},
		Checked: make(map[string][]string, len(s.Checked)),
	}

	for i, e := range s.Income {
		doc.Income[i] = IncomeDocument{ID: e.ID, Source: e.Source, Amount: e.Amount, CreatedAt: e.CreatedAt}
	}
	for i, e := range s.Expenses {
		doc.Expenses[i] = ExpenseDocument{
			ID:          e.ID,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			CreatedAt:   e.CreatedAt,
		}
	}
	for i, e := range s.Automations {
		doc.Automations[i] = AutomationDocument{
			ID:              e.ID,
			Method:          e.Method,
			AmountFrequency: e.AmountFrequency,
			Status:          string(e.Status),
			CreatedAt:       e.CreatedAt,
		}
	}
	for i, e := range s.NoiseLife {
		doc.NoiseLife[i] = NoiseLifeDocument{ID: e.ID, Item: e.Item, Type: string(e.Type), CreatedAt: e.CreatedAt}
	}
	for i, e := range s.ActionPlan {
		doc.ActionPlan[i] = ActionPlanDocument{
			ID:        e.ID,
			Step:      e.Step,
			Timeline:  e.Timeline,
			Status:    string(e.Status),
			CreatedAt: e.CreatedAt,
		}
	}
	for kind, keys := range s.Checked {
		doc.Checked[string(kind)] = keys
	}

	return doc
}

// ToEntity converts a WorkspaceDocument to a domain workspace.
func (d *WorkspaceDocument) ToEntity() *workspace.Workspace {
	s := workspace.Snapshot{
		Income:      make([]entity.IncomeEntry, len(d.Income)),
		Expenses:    make([]entity.ExpenseEntry, len(d.Expenses)),
		Automations: make([]entity.AutomationEntry, len(d.Automations)),
		NoiseLife:   make([]entity.NoiseLifeEntry, len(d.NoiseLife)),
		ActionPlan:  make([]entity.ActionPlanEntry, len(d.ActionPlan)),
		Savings: entity.SavingsState{
			EmergencyFund:     d.Savings.EmergencyFund,
			EmergencyFundGoal: d.Savings.EmergencyFundGoal,
		},
		Checked: make(map[entity.ChecklistKind][]string, len(d.Checked)),
	}

	for i, e := range d.Income {
		s.Income[i] = entity.IncomeEntry{ID: e.ID, Source: e.Source, Amount: e.Amount, CreatedAt: e.CreatedAt}
	}
	for i, e := range d.Expenses {
		s.Expenses[i] = entity.ExpenseEntry{
			ID:          e.ID,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			CreatedAt:   e.CreatedAt,
		}
	}
	for i, e := range d.Automations {
		s.Automations[i] = entity.AutomationEntry{
			ID:              e.ID,
			Method:          e.Method,
			AmountFrequency: e.AmountFrequency,
			Status:          entity.AutomationStatus(e.Status),
			CreatedAt:       e.CreatedAt,
		}
	}
	for i, e := range d.NoiseLife {
		s.NoiseLife[i] = entity.NoiseLifeEntry{ID: e.ID, Item: e.Item, Type: entity.NoiseLifeType(e.Type), CreatedAt: e.CreatedAt}
	}
	for i, e := range d.ActionPlan {
		s.ActionPlan[i] = entity.ActionPlanEntry{
			ID:        e.ID,
			Step:      e.Step,
			Timeline:  e.Timeline,
			Status:    entity.ActionStatus(e.Status),
			CreatedAt: e.CreatedAt,
		}
	}
	for kind, keys := range d.Checked {
		s.Checked[entity.ChecklistKind(kind)] = keys
	}

	return workspace.Restore(s)
}

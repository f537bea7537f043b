package dto

import (
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/checklist"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/dashboard"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/expense"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/savings"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// SessionResponse represents a newly started session.
type SessionResponse struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// SessionStateResponse represents the whole state of a session with its aggregates.
type SessionStateResponse struct {
	Session     SessionResponse       `json:"session"`
	Income      IncomeListResponse    `json:"income"`
	Expenses    ExpenseListResponse   `json:"expenses"`
	Breakdown   BreakdownResponse     `json:"breakdown"`
	Savings     SavingsResponse       `json:"savings"`
	Automations []AutomationResponse  `json:"automations"`
	NoiseLife   []NoiseLifeResponse   `json:"noise_life"`
	ActionPlan  []ActionStepResponse  `json:"action_plan"`
	Checklists  ChecklistListResponse `json:"checklists"`
	Dashboard   DashboardResponse     `json:"dashboard"`
}

// ToSessionResponse converts a domain Session to a SessionResponse DTO.
func ToSessionResponse(s *entity.Session) SessionResponse {
	return SessionResponse{
		ID:         s.ID.String(),
		CreatedAt:  s.CreatedAt,
		LastSeenAt: s.LastSeenAt,
	}
}

// ToSessionStateResponse converts a session and its workspace to a SessionStateResponse DTO.
func ToSessionStateResponse(s *entity.Session, ws *workspace.Workspace, tracker valueobject.TrackerConfig, f *MoneyFormatter) SessionStateResponse {
	incomeEntries := ws.Income()
	incomeList := make([]IncomeResponse, len(incomeEntries))
	for i, e := range incomeEntries {
		incomeList[i] = ToIncomeResponse(e, f)
	}

	expenseEntries := ws.Expenses()
	expenseList := make([]ExpenseResponse, len(expenseEntries))
	for i, e := range expenseEntries {
		expenseList[i] = ToExpenseResponse(e, f)
	}

	automations := ws.Automations()
	automationList := make([]AutomationResponse, len(automations))
	for i, e := range automations {
		automationList[i] = ToAutomationResponse(e)
	}

	noiseLife := ws.NoiseLife("")
	noiseLifeList := make([]NoiseLifeResponse, len(noiseLife))
	for i, e := range noiseLife {
		noiseLifeList[i] = ToNoiseLifeResponse(e)
	}

	steps := ws.ActionPlan()
	stepList := make([]ActionStepResponse, len(steps))
	for i, e := range steps {
		stepList[i] = ToActionStepResponse(e)
	}

	lists := ws.Checklists()
	views := make([]checklist.ChecklistView, len(lists))
	for i, list := range lists {
		views[i] = checklist.NewChecklistView(list)
	}

	summary := dashboard.Summarize(ws, tracker)

	return SessionStateResponse{
		Session: ToSessionResponse(s),
		Income: IncomeListResponse{
			Income: incomeList,
			Total:  f.Money(aggregate.TotalIncome(incomeEntries)),
		},
		Expenses: ExpenseListResponse{
			Expenses: expenseList,
			Total:    f.Money(aggregate.TotalExpenses(expenseEntries)),
		},
		Breakdown:   ToBreakdownResponse(expense.Breakdown(expenseEntries, tracker), f),
		Savings:     ToSavingsResponse(savings.NewSavingsOutput(ws.Savings()), f),
		Automations: automationList,
		NoiseLife:   noiseLifeList,
		ActionPlan:  stepList,
		Checklists:  ToChecklistListResponse(&checklist.ListChecklistsOutput{Checklists: views}, f),
		Dashboard:   ToDashboardResponse(&summary, f),
	}
}

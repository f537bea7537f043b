// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// GetDashboardInput represents the input for the dashboard.
type GetDashboardInput struct {
	SessionID uuid.UUID
}

// Summary holds the headline figures of a session.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetSavings        decimal.Decimal
	EmergencyFund     aggregate.Progress
	Milestone         aggregate.Progress
	ActiveAutomations int
	CompletedSteps    int
	TotalSteps        int
	ChallengeTotal    decimal.Decimal
}

// GetDashboardUseCase handles building the dashboard.
type GetDashboardUseCase struct {
	sessionRepo adapter.SessionRepository
	tracker     valueobject.TrackerConfig
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(sessionRepo adapter.SessionRepository, tracker valueobject.TrackerConfig) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		sessionRepo: sessionRepo,
		tracker:     tracker,
	}
}

// Execute computes the dashboard from the session's current state.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*Summary, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("get dashboard", err)
	}

	summary := Summarize(ws, uc.tracker)
	return &summary, nil
}

// Summarize derives the dashboard figures from a workspace.
func Summarize(ws *workspace.Workspace, tracker valueobject.TrackerConfig) Summary {
	income := ws.Income()
	expenses := ws.Expenses()
	savings := ws.Savings()

	summary := Summary{
		TotalIncome:    aggregate.TotalIncome(income),
		TotalExpenses:  aggregate.TotalExpenses(expenses),
		NetSavings:     aggregate.NetSavings(income, expenses),
		EmergencyFund:  aggregate.NewProgress(savings.EmergencyFund, savings.EmergencyFundGoal),
		Milestone:      aggregate.NewProgress(savings.EmergencyFund, tracker.Milestone),
		ChallengeTotal: decimal.Zero,
	}

	for _, a := range ws.Automations() {
		if a.Status == entity.AutomationStatusActive {
			summary.ActiveAutomations++
		}
	}

	steps := ws.ActionPlan()
	summary.TotalSteps = len(steps)
	for _, s := range steps {
		if s.Status == entity.ActionStatusCompleted {
			summary.CompletedSteps++
		}
	}

	if challenge, err := ws.Checklist(entity.ChecklistKindChallenge); err == nil {
		summary.ChallengeTotal = aggregate.ChallengeTotal(challenge.Flags())
	}

	return summary
}

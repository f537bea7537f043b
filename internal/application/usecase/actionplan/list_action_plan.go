package actionplan

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// ListActionPlanInput represents the input for listing the action plan.
type ListActionPlanInput struct {
	SessionID uuid.UUID
}

// ListActionPlanOutput represents the steps and how many are completed.
type ListActionPlanOutput struct {
	Entries   []entity.ActionPlanEntry
	Completed int
	Progress  aggregate.Progress
}

// ListActionPlanUseCase handles listing the action plan.
type ListActionPlanUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListActionPlanUseCase creates a new ListActionPlanUseCase instance.
func NewListActionPlanUseCase(sessionRepo adapter.SessionRepository) *ListActionPlanUseCase {
	return &ListActionPlanUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists steps in insertion order.
func (uc *ListActionPlanUseCase) Execute(ctx context.Context, input ListActionPlanInput) (*ListActionPlanOutput, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("list action plan", err)
	}

	entries := ws.ActionPlan()
	completed := 0
	for _, e := range entries {
		if e.Status == entity.ActionStatusCompleted {
			completed++
		}
	}

	return &ListActionPlanOutput{
		Entries:   entries,
		Completed: completed,
		Progress:  aggregate.NewProgress(decimal.NewFromInt(int64(completed)), decimal.NewFromInt(int64(len(entries)))),
	}, nil
}

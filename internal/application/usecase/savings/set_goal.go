package savings

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// SetGoalInput represents the input for changing the emergency fund goal.
type SetGoalInput struct {
	SessionID uuid.UUID
	Amount    string
}

// SetGoalUseCase handles changing the emergency fund goal.
type SetGoalUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewSetGoalUseCase creates a new SetGoalUseCase instance.
func NewSetGoalUseCase(sessionRepo adapter.SessionRepository) *SetGoalUseCase {
	return &SetGoalUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute sets the emergency fund goal. Non-positive values are rejected and
// the previous goal is kept.
func (uc *SetGoalUseCase) Execute(ctx context.Context, input SetGoalInput) (*SavingsOutput, error) {
	var state entity.SavingsState

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var setErr error
		state, setErr = ws.SetGoal(input.Amount)
		return setErr
	})
	if err != nil {
		return nil, session.RepositoryError("set emergency fund goal", err)
	}

	return NewSavingsOutput(state), nil
}

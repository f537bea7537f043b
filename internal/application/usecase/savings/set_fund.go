package savings

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// SetFundInput represents the input for overwriting the emergency fund.
type SetFundInput struct {
	SessionID uuid.UUID
	Amount    string
}

// SetFundUseCase handles overwriting the emergency fund balance.
type SetFundUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewSetFundUseCase creates a new SetFundUseCase instance.
func NewSetFundUseCase(sessionRepo adapter.SessionRepository) *SetFundUseCase {
	return &SetFundUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute sets the emergency fund balance.
func (uc *SetFundUseCase) Execute(ctx context.Context, input SetFundInput) (*SavingsOutput, error) {
	var state entity.SavingsState

	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		var setErr error
		state, setErr = ws.SetFund(input.Amount)
		return setErr
	})
	if err != nil {
		return nil, session.RepositoryError("set emergency fund", err)
	}

	return NewSavingsOutput(state), nil
}

package income

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// RemoveIncomeInput represents the input for removing an income entry.
type RemoveIncomeInput struct {
	SessionID uuid.UUID
	EntryID   uuid.UUID
}

// RemoveIncomeUseCase handles removing income.
type RemoveIncomeUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewRemoveIncomeUseCase creates a new RemoveIncomeUseCase instance.
func NewRemoveIncomeUseCase(sessionRepo adapter.SessionRepository) *RemoveIncomeUseCase {
	return &RemoveIncomeUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute removes the income entry. An unknown id leaves the session unchanged
// and returns an EntryError with ErrCodeEntryNotFound.
func (uc *RemoveIncomeUseCase) Execute(ctx context.Context, input RemoveIncomeInput) error {
	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		if !ws.RemoveIncome(input.EntryID) {
			return domainerror.NewEntryNotFoundError("income")
		}
		return nil
	})
	return session.RepositoryError("remove income", err)
}

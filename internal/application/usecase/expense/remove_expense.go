package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// RemoveExpenseInput represents the input for removing an expense entry.
type RemoveExpenseInput struct {
	SessionID uuid.UUID
	EntryID   uuid.UUID
}

// RemoveExpenseUseCase handles removing expenses.
type RemoveExpenseUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewRemoveExpenseUseCase creates a new RemoveExpenseUseCase instance.
func NewRemoveExpenseUseCase(sessionRepo adapter.SessionRepository) *RemoveExpenseUseCase {
	return &RemoveExpenseUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute removes the expense entry.
func (uc *RemoveExpenseUseCase) Execute(ctx context.Context, input RemoveExpenseInput) error {
	_, err := uc.sessionRepo.Update(ctx, input.SessionID, func(ws *workspace.Workspace) error {
		if !ws.RemoveExpense(input.EntryID) {
			return domainerror.NewEntryNotFoundError("expense")
		}
		return nil
	})
	return session.RepositoryError("remove expense", err)
}

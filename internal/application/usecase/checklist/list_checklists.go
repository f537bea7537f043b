package checklist

import (
	"context"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
)

// ListChecklistsInput represents the input for listing every checklist.
type ListChecklistsInput struct {
	SessionID uuid.UUID
}

// ListChecklistsOutput represents every checklist in display order.
type ListChecklistsOutput struct {
	Checklists []ChecklistView
}

// ListChecklistsUseCase handles listing checklists.
type ListChecklistsUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListChecklistsUseCase creates a new ListChecklistsUseCase instance.
func NewListChecklistsUseCase(sessionRepo adapter.SessionRepository) *ListChecklistsUseCase {
	return &ListChecklistsUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute lists all four checklists.
func (uc *ListChecklistsUseCase) Execute(ctx context.Context, input ListChecklistsInput) (*ListChecklistsOutput, error) {
	_, ws, err := uc.sessionRepo.Get(ctx, input.SessionID)
	if err != nil {
		return nil, session.RepositoryError("list checklists", err)
	}

	lists := ws.Checklists()
	views := make([]ChecklistView, len(lists))
	for i, list := range lists {
		views[i] = NewChecklistView(list)
	}

	return &ListChecklistsOutput{Checklists: views}, nil
}

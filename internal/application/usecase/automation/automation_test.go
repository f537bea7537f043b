package automation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
	"github.com/eternal-wealth/toolkit/internal/integration/persistence"
)

func TestAutomationUseCases(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewMemorySessionRepository(time.Hour)

	started, err := session.NewStartSessionUseCase(repo, valueobject.DefaultTrackerConfig()).Execute(ctx)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	sessionID := started.Session.ID

	added, err := NewAddAutomationUseCase(repo).Execute(ctx, AddAutomationInput{
		SessionID:       sessionID,
		Method:          "Payroll split",
		AmountFrequency: "$100 / paycheck",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added.Entry.Status != entity.AutomationStatusActive {
		t.Errorf("expected new automation to be active, got %s", added.Entry.Status)
	}

	t.Run("toggle flips the status", func(t *testing.T) {
		output, err := NewToggleAutomationUseCase(repo).Execute(ctx, ToggleAutomationInput{
			SessionID: sessionID,
			EntryID:   added.Entry.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Entry.Status != entity.AutomationStatusPlanned {
			t.Errorf("expected planned, got %s", output.Entry.Status)
		}
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := NewSetAutomationStatusUseCase(repo).Execute(ctx, SetAutomationStatusInput{
			SessionID: sessionID,
			EntryID:   added.Entry.ID,
			Status:    "paused",
		})

		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeInvalidStatus {
			t.Errorf("expected invalid status error, got %v", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := NewToggleAutomationUseCase(repo).Execute(ctx, ToggleAutomationInput{
			SessionID: sessionID,
			EntryID:   uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("list counts statuses", func(t *testing.T) {
		output, err := NewListAutomationsUseCase(repo).Execute(ctx, ListAutomationsInput{SessionID: sessionID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 1 || output.Active != 0 || output.Planned != 1 {
			t.Errorf("expected 1 planned automation, got %+v", output)
		}
	})

	t.Run("unknown session is a session error", func(t *testing.T) {
		_, err := NewListAutomationsUseCase(repo).Execute(ctx, ListAutomationsInput{SessionID: uuid.New()})

		var sessionErr *domainerror.SessionError
		if !errors.As(err, &sessionErr) || sessionErr.Code != domainerror.ErrCodeSessionNotFound {
			t.Errorf("expected session not found, got %v", err)
		}
	})
}

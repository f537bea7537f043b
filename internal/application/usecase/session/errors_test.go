package session

import (
	"errors"
	"fmt"
	"testing"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

func TestRepositoryError(t *testing.T) {
	entryErr := domainerror.NewEntryNotFoundError("income")
	infraErr := errors.New("dial tcp: connection refused")

	t.Run("nil stays nil", func(t *testing.T) {
		if err := RepositoryError("add income", nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("missing session becomes a coded session error", func(t *testing.T) {
		err := RepositoryError("add income", fmt.Errorf("lookup: %w", domainerror.ErrSessionNotFound))

		var sessionErr *domainerror.SessionError
		if !errors.As(err, &sessionErr) {
			t.Fatalf("expected SessionError, got %T", err)
		}
		if sessionErr.Code != domainerror.ErrCodeSessionNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeSessionNotFound, sessionErr.Code)
		}
	})

	t.Run("conflict becomes a coded session error", func(t *testing.T) {
		err := RepositoryError("add income", domainerror.ErrSessionConflict)

		var sessionErr *domainerror.SessionError
		if !errors.As(err, &sessionErr) || sessionErr.Code != domainerror.ErrCodeSessionConflict {
			t.Errorf("expected conflict session error, got %v", err)
		}
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		if err := RepositoryError("remove income", entryErr); err != entryErr {
			t.Errorf("expected the original error, got %v", err)
		}
	})

	t.Run("infrastructure errors are wrapped", func(t *testing.T) {
		err := RepositoryError("add income", infraErr)
		if !errors.Is(err, infraErr) {
			t.Errorf("expected wrapped error, got %v", err)
		}
		if err.Error() != "failed to add income: "+infraErr.Error() {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

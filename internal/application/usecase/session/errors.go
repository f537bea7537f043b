// Package session contains session lifecycle use cases.
package session

import (
	"errors"
	"fmt"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

// RepositoryError converts a repository failure into the error returned to
// callers. Missing sessions and lost update races become coded session errors;
// coded domain errors raised by a mutation pass through; anything else is
// wrapped with action.
func RepositoryError(action string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domainerror.ErrSessionNotFound):
		return domainerror.NewSessionError(
			domainerror.ErrCodeSessionNotFound,
			"session not found or expired",
			domainerror.ErrSessionNotFound,
		)
	case errors.Is(err, domainerror.ErrSessionConflict):
		return domainerror.NewSessionError(
			domainerror.ErrCodeSessionConflict,
			"session was modified concurrently, retry the request",
			domainerror.ErrSessionConflict,
		)
	}

	var (
		entryErr     *domainerror.EntryError
		savingsErr   *domainerror.SavingsError
		checklistErr *domainerror.ChecklistError
	)
	if errors.As(err, &entryErr) || errors.As(err, &savingsErr) || errors.As(err, &checklistErr) {
		return err
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

// MutateFunc changes a session's workspace. Returning an error discards every
// change made by the function.
type MutateFunc func(ws *workspace.Workspace) error

// SessionRepository defines the interface for session storage.
// Implementations return domainerror.ErrSessionNotFound for unknown or expired sessions,
// and every successful call refreshes the session's idle timer.
type SessionRepository interface {
	// Create stores a new session with its initial workspace.
	Create(ctx context.Context, session *entity.Session, ws *workspace.Workspace) error

	// Get returns the session and a detached copy of its workspace.
	Get(ctx context.Context, id uuid.UUID) (*entity.Session, *workspace.Workspace, error)

	// Update applies fn to the session's workspace. Concurrent updates of the
	// same session are serialized; the result is stored only if fn succeeds.
	Update(ctx context.Context, id uuid.UUID, fn MutateFunc) (*workspace.Workspace, error)

	// Delete removes a session.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes sessions idle since before the TTL elapsed at now
	// and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

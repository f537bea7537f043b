// Package persistence implements repository interfaces for session storage.
package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eternal-wealth/toolkit/internal/application/adapter"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/workspace"
)

type memorySession struct {
	mu      sync.Mutex
	session entity.Session
	ws      *workspace.Workspace
	deleted bool
}

// memorySessionRepository implements the adapter.SessionRepository interface
// in process memory. Each session has its own mutex; the map lock is never
// held while waiting on a session lock.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*memorySession
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionRepository creates a new in-memory session repository.
func NewMemorySessionRepository(ttl time.Duration, opts ...Option) adapter.SessionRepository {
	o := applyOptions(opts)
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]*memorySession),
		ttl:      ttl,
		now:      o.now,
	}
}

// Create stores a new session.
func (r *memorySessionRepository) Create(_ context.Context, session *entity.Session, ws *workspace.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = &memorySession{
		session: *session,
		ws:      ws.Clone(),
	}
	return nil
}

// Get returns the session and a copy of its workspace.
func (r *memorySessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, *workspace.Workspace, error) {
	var (
		session entity.Session
		ws      *workspace.Workspace
	)

	err := r.withSession(ctx, id, func(s *memorySession) error {
		session = s.session
		ws = s.ws.Clone()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &session, ws, nil
}

// Update applies fn to a copy of the workspace and keeps it only if fn succeeds.
func (r *memorySessionRepository) Update(ctx context.Context, id uuid.UUID, fn adapter.MutateFunc) (*workspace.Workspace, error) {
	var result *workspace.Workspace

	err := r.withSession(ctx, id, func(s *memorySession) error {
		draft := s.ws.Clone()
		if err := fn(draft); err != nil {
			return err
		}
		s.ws = draft
		result = draft.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a session.
func (r *memorySessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return domainerror.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expired := s.session.IsExpired(r.now(), r.ttl)
	s.deleted = true
	if expired {
		return domainerror.ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes every session idle for at least the TTL.
func (r *memorySessionRepository) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if !s.mu.TryLock() {
			// busy sessions are in use and therefore not idle
			continue
		}
		if s.session.IsExpired(now, r.ttl) {
			s.deleted = true
			delete(r.sessions, id)
			removed++
		}
		s.mu.Unlock()
	}
	return removed, nil
}

// Ping always succeeds for the in-memory store.
func (r *memorySessionRepository) Ping(_ context.Context) error {
	return nil
}

// withSession runs fn while holding the session lock and refreshes the idle
// timer when fn succeeds.
func (r *memorySessionRepository) withSession(ctx context.Context, id uuid.UUID, fn func(s *memorySession) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return domainerror.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := r.now()
	if s.deleted || s.session.IsExpired(now, r.ttl) {
		return domainerror.ErrSessionNotFound
	}

	if err := fn(s); err != nil {
		return err
	}
	s.session.LastSeenAt = now
	return nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session groups the state of one user visit. It lives until ended or until it
// has been idle longer than the configured TTL.
type Session struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// NewSession creates a new Session entity.
func NewSession() *Session {
	now := time.Now().UTC()

	return &Session{
		ID:         uuid.New(),
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// IsExpired reports whether the session has been idle for at least ttl at now.
func (s *Session) IsExpired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return !now.Before(s.LastSeenAt.Add(ttl))
}

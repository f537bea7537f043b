package mock

import (
	"sync"
	"time"
)

// Time is a clock that keeps ticking with wall time but can be jumped
// forward, so session expiry can be exercised without sleeping.
type Time struct {
	mu     sync.Mutex
	base   time.Time
	anchor time.Time
}

// NewTime returns a clock reading the current UTC time.
func NewTime() *Time {
	now := time.Now().UTC()
	return &Time{base: now, anchor: now}
}

// SetCurrentTime makes the clock read t from now on.
func (c *Time) SetCurrentTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = t
	c.anchor = time.Now().UTC()
}

// Advance moves the clock forward by d.
func (c *Time) Advance(d time.Duration) {
	c.SetCurrentTime(c.Now().Add(d))
}

func (c *Time) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base.Add(time.Since(c.anchor))
}

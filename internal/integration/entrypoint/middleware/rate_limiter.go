package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

const (
	defaultSessionCreates = 20
	defaultWindow         = time.Minute

	// pruneAbove is the number of tracked clients past which idle clients
	// are dropped on the next request.
	pruneAbove = 10000
)

// RateLimiter caps how many sessions one client may start inside a sliding
// window. Each client keeps the timestamps of its recent hits, oldest first.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string][]time.Time
	limit   int
	window  time.Duration
	off     bool
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing 20 session starts per minute.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultSessionCreates, defaultWindow)
}

// NewRateLimiterWithConfig creates a limiter allowing limit hits per window.
func NewRateLimiterWithConfig(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Disable turns the limiter into a pass-through.
func (rl *RateLimiter) Disable() *RateLimiter {
	rl.mu.Lock()
	rl.off = true
	rl.mu.Unlock()
	return rl
}

// Middleware rejects a client with 429 once it exceeds the limit. The
// Retry-After header tells it when its oldest hit leaves the window.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()
		if client == "" {
			client = c.Request.RemoteAddr
		}

		wait, ok := rl.hit(client)
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many sessions started. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// hit records a request for client. When the client is over the limit it
// returns false and how long until a slot frees up.
func (rl *RateLimiter) hit(client string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.off {
		return 0, true
	}

	now := rl.now()
	if len(rl.clients) > pruneAbove {
		rl.prune(now)
	}

	hits := recent(rl.clients[client], now.Add(-rl.window))
	if len(hits) >= rl.limit {
		rl.clients[client] = hits
		return hits[0].Add(rl.window).Sub(now), false
	}

	rl.clients[client] = append(hits, now)
	return 0, true
}

// Reset forgets every client.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.clients = make(map[string][]time.Time)
}

// Cleanup drops clients with no hits inside the window.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.prune(rl.now())
}

func (rl *RateLimiter) prune(now time.Time) {
	since := now.Add(-rl.window)
	for client, hits := range rl.clients {
		if hits = recent(hits, since); len(hits) == 0 {
			delete(rl.clients, client)
		} else {
			rl.clients[client] = hits
		}
	}
}

// recent returns the suffix of hits newer than since.
func recent(hits []time.Time, since time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(since) {
		i++
	}
	return hits[i:]
}

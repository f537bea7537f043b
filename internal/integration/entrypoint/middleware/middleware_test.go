package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResolveSession(t *testing.T) {
	validID := uuid.New()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "valid session id", path: "/sessions/" + validID.String(), expectedStatus: http.StatusOK},
		{name: "malformed session id", path: "/sessions/not-a-uuid", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resolved uuid.UUID
			router := gin.New()
			router.GET("/sessions/:session_id", ResolveSession(), func(c *gin.Context) {
				resolved, _ = GetSessionIDFromContext(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus == http.StatusOK && resolved != validID {
				t.Errorf("expected session id %s in context, got %s", validID, resolved)
			}
		})
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := GetSessionIDFromContext(c); ok {
		t.Error("expected no session id in a fresh context")
	}
}

func TestRateLimiter(t *testing.T) {
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return current }

	router := gin.New()
	router.POST("/sessions", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allows up to the limit", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if code := post().Code; code != http.StatusCreated {
				t.Fatalf("request %d: expected 201, got %d", i+1, code)
			}
			current = current.Add(10 * time.Second)
		}
	})

	t.Run("rejects beyond the limit", func(t *testing.T) {
		w := post()
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		// first hit was 20s ago, so it leaves the window in 40s
		if got := w.Header().Get("Retry-After"); got != "40" {
			t.Errorf("expected Retry-After 40, got %q", got)
		}
	})

	t.Run("window reset allows again", func(t *testing.T) {
		current = current.Add(2 * time.Minute)
		if code := post().Code; code != http.StatusCreated {
			t.Errorf("expected 201 after window reset, got %d", code)
		}
	})

	t.Run("cleanup drops stale entries", func(t *testing.T) {
		current = current.Add(2 * time.Minute)
		rl.Cleanup()
		if len(rl.clients) != 0 {
			t.Errorf("expected no tracked clients, got %d", len(rl.clients))
		}
	})

	t.Run("disabled limiter passes through", func(t *testing.T) {
		rl.Reset()
		rl.Disable()
		for i := 0; i < 5; i++ {
			if code := post().Code; code != http.StatusCreated {
				t.Fatalf("expected 201 while disabled, got %d", code)
			}
		}
	})
}

package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	backend string
	ping    func(ctx context.Context) error
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(backend string, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{
		backend: backend,
		ping:    ping,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its session store.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	storage := "connected"
	code := http.StatusOK

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			status = "degraded"
			storage = "disconnected"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Backend:   h.backend,
		Storage:   storage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

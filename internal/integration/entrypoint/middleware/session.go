// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SessionIDKey is the context key for the resolved session ID.
	SessionIDKey ContextKey = "session_id"

	// SessionIDParam is the route parameter holding the session ID.
	SessionIDParam = "session_id"
)

// ResolveSession returns a Gin middleware handler that parses the session ID
// route parameter and stores it in the context. Whether the session exists is
// decided by the use case that runs next.
func ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(SessionIDParam)
		if raw == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Session ID is required",
				Code:  string(domainerror.ErrCodeInvalidSessionID),
			})
			c.Abort()
			return
		}

		sessionID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid session ID format",
				Code:  string(domainerror.ErrCodeInvalidSessionID),
			})
			c.Abort()
			return
		}

		c.Set(string(SessionIDKey), sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext extracts the session ID from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(string(SessionIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := sessionID.(uuid.UUID)
	return id, ok
}

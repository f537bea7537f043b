package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/middleware"
)

// handleError writes the response for a use case error. Coded domain errors
// map to client statuses; anything else is logged and reported as a 500.
func handleError(ctx *gin.Context, err error) {
	var (
		entryErr     *domainerror.EntryError
		savingsErr   *domainerror.SavingsError
		checklistErr *domainerror.ChecklistError
		sessionErr   *domainerror.SessionError
	)

	switch {
	case errors.As(err, &entryErr):
		ctx.JSON(getStatusCodeForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
			Field: entryErr.Field,
		})
	case errors.As(err, &savingsErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: savingsErr.Message,
			Code:  string(savingsErr.Code),
		})
	case errors.As(err, &checklistErr):
		ctx.JSON(getStatusCodeForChecklistError(checklistErr.Code), dto.ErrorResponse{
			Error: checklistErr.Message,
			Code:  string(checklistErr.Code),
		})
	case errors.As(err, &sessionErr):
		ctx.JSON(getStatusCodeForSessionError(sessionErr.Code), dto.ErrorResponse{
			Error: sessionErr.Message,
			Code:  string(sessionErr.Code),
		})
	default:
		sessionID, _ := middleware.GetSessionIDFromContext(ctx)
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"session_id", sessionID,
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// getStatusCodeForChecklistError maps checklist error codes to HTTP status codes.
func getStatusCodeForChecklistError(code domainerror.ChecklistErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnknownChecklist, domainerror.ErrCodeChecklistItemNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// getStatusCodeForSessionError maps session error codes to HTTP status codes.
func getStatusCodeForSessionError(code domainerror.SessionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSessionConflict:
		return http.StatusConflict
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInvalidSessionID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sessionIDOrAbort returns the session ID resolved by the middleware.
func sessionIDOrAbort(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Session ID is required",
			Code:  string(domainerror.ErrCodeInvalidSessionID),
		})
		return uuid.Nil, false
	}
	return sessionID, true
}

// entryIDOrAbort parses the :id route parameter.
func entryIDOrAbort(ctx *gin.Context) (uuid.UUID, bool) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
			Code:  string(domainerror.ErrCodeInvalidEntryID),
			Field: "id",
		})
		return uuid.Nil, false
	}
	return entryID, true
}

// bindOrAbort decodes the JSON body into req.
func bindOrAbort(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMalformedEntryBody),
			Details: err.Error(),
		})
		return false
	}
	return true
}

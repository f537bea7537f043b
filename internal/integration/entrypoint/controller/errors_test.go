package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "validation error",
			err:            domainerror.NewEntryError(domainerror.ErrCodeInvalidAmount, "amount", "invalid amount", domainerror.ErrInvalidAmount),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "ENT-010002",
		},
		{
			name:           "unknown entry",
			err:            domainerror.NewEntryNotFoundError("income"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "ENT-020001",
		},
		{
			name:           "negative fund",
			err:            domainerror.NewSavingsError(domainerror.ErrCodeNegativeFundAmount, "negative", domainerror.ErrNegativeFundAmount),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "SAV-010002",
		},
		{
			name:           "unknown checklist",
			err:            domainerror.NewChecklistError(domainerror.ErrCodeUnknownChecklist, "unknown", domainerror.ErrUnknownChecklist),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "CHK-010001",
		},
		{
			name:           "session not found",
			err:            domainerror.NewSessionError(domainerror.ErrCodeSessionNotFound, "gone", domainerror.ErrSessionNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "SES-020001",
		},
		{
			name:           "session conflict",
			err:            domainerror.NewSessionError(domainerror.ErrCodeSessionConflict, "conflict", domainerror.ErrSessionConflict),
			expectedStatus: http.StatusConflict,
			expectedCode:   "SES-030001",
		},
		{
			name:           "wrapped domain error",
			err:            fmt.Errorf("outer: %w", domainerror.NewEntryNotFoundError("expense")),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "ENT-020001",
		},
		{
			name:           "infrastructure error",
			err:            errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Code != tt.expectedCode {
				t.Errorf("expected code %q, got %q", tt.expectedCode, body.Code)
			}
			if tt.expectedStatus == http.StatusInternalServerError && body.Error != "An internal error occurred" {
				t.Errorf("expected generic message, got %q", body.Error)
			}
		})
	}
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/automation"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// AutomationController handles automation endpoints.
type AutomationController struct {
	listUseCase      *automation.ListAutomationsUseCase
	addUseCase       *automation.AddAutomationUseCase
	toggleUseCase    *automation.ToggleAutomationUseCase
	setStatusUseCase *automation.SetAutomationStatusUseCase
}

// NewAutomationController creates a new automation controller instance.
func NewAutomationController(
	listUseCase *automation.ListAutomationsUseCase,
	addUseCase *automation.AddAutomationUseCase,
	toggleUseCase *automation.ToggleAutomationUseCase,
	setStatusUseCase *automation.SetAutomationStatusUseCase,
) *AutomationController {
	return &AutomationController{
		listUseCase:      listUseCase,
		addUseCase:       addUseCase,
		toggleUseCase:    toggleUseCase,
		setStatusUseCase: setStatusUseCase,
	}
}

// List handles GET /sessions/:session_id/automations requests.
func (c *AutomationController) List(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), automation.ListAutomationsInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAutomationListResponse(output))
}

// Add handles POST /sessions/:session_id/automations requests.
func (c *AutomationController) Add(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.AddAutomationRequest
	if !bindOrAbort(ctx, &req) {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), automation.AddAutomationInput{
		SessionID:       sessionID,
		Method:          req.Method,
		AmountFrequency: req.AmountFrequency,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAutomationResponse(output.Entry))
}

// Toggle handles PATCH /sessions/:session_id/automations/:id/toggle requests.
func (c *AutomationController) Toggle(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	entryID, ok := entryIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), automation.ToggleAutomationInput{
		SessionID: sessionID,
		EntryID:   entryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAutomationResponse(output.Entry))
}

// SetStatus handles PUT /sessions/:session_id/automations/:id/status requests.
func (c *AutomationController) SetStatus(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	entryID, ok := entryIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if !bindOrAbort(ctx, &req) {
		return
	}

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), automation.SetAutomationStatusInput{
		SessionID: sessionID,
		EntryID:   entryID,
		Status:    entity.AutomationStatus(req.Status),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAutomationResponse(output.Entry))
}

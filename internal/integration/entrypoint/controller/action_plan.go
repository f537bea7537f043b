package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/actionplan"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// ActionPlanController handles action plan endpoints.
type ActionPlanController struct {
	listUseCase      *actionplan.ListActionPlanUseCase
	addUseCase       *actionplan.AddActionStepUseCase
	toggleUseCase    *actionplan.ToggleActionStepUseCase
	setStatusUseCase *actionplan.SetActionStepStatusUseCase
}

// NewActionPlanController creates a new action plan controller instance.
func NewActionPlanController(
	listUseCase *actionplan.ListActionPlanUseCase,
	addUseCase *actionplan.AddActionStepUseCase,
	toggleUseCase *actionplan.ToggleActionStepUseCase,
	setStatusUseCase *actionplan.SetActionStepStatusUseCase,
) *ActionPlanController {
	return &ActionPlanController{
		listUseCase:      listUseCase,
		addUseCase:       addUseCase,
		toggleUseCase:    toggleUseCase,
		setStatusUseCase: setStatusUseCase,
	}
}

// List handles GET /sessions/:session_id/action-plan requests.
func (c *ActionPlanController) List(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), actionplan.ListActionPlanInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionPlanResponse(output))
}

// Add handles POST /sessions/:session_id/action-plan requests.
func (c *ActionPlanController) Add(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.AddActionStepRequest
	if !bindOrAbort(ctx, &req) {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), actionplan.AddActionStepInput{
		SessionID: sessionID,
		Step:      req.Step,
		Timeline:  req.Timeline,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActionStepResponse(output.Entry))
}

// Toggle handles PATCH /sessions/:session_id/action-plan/:id/toggle requests.
func (c *ActionPlanController) Toggle(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	entryID, ok := entryIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), actionplan.ToggleActionStepInput{
		SessionID: sessionID,
		EntryID:   entryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionStepResponse(output.Entry))
}

// SetStatus handles PUT /sessions/:session_id/action-plan/:id/status requests.
func (c *ActionPlanController) SetStatus(ctx *gin.Context) {
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

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), actionplan.SetActionStepStatusInput{
		SessionID: sessionID,
		EntryID:   entryID,
		Status:    entity.ActionStatus(req.Status),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionStepResponse(output.Entry))
}

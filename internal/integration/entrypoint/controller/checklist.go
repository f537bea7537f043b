package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/checklist"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// ChecklistController handles checklist endpoints.
type ChecklistController struct {
	listUseCase   *checklist.ListChecklistsUseCase
	getUseCase    *checklist.GetChecklistUseCase
	toggleUseCase *checklist.ToggleItemUseCase
	money         *dto.MoneyFormatter
}

// NewChecklistController creates a new checklist controller instance.
func NewChecklistController(
	listUseCase *checklist.ListChecklistsUseCase,
	getUseCase *checklist.GetChecklistUseCase,
	toggleUseCase *checklist.ToggleItemUseCase,
	money *dto.MoneyFormatter,
) *ChecklistController {
	return &ChecklistController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		toggleUseCase: toggleUseCase,
		money:         money,
	}
}

// List handles GET /sessions/:session_id/checklists requests.
func (c *ChecklistController) List(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), checklist.ListChecklistsInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChecklistListResponse(output, c.money))
}

// Get handles GET /sessions/:session_id/checklists/:kind requests.
func (c *ChecklistController) Get(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	view, err := c.getUseCase.Execute(ctx.Request.Context(), checklist.GetChecklistInput{
		SessionID: sessionID,
		Kind:      entity.ChecklistKind(ctx.Param("kind")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChecklistResponse(*view, c.money))
}

// Toggle handles PATCH /sessions/:session_id/checklists/:kind/items/:key/toggle requests.
func (c *ChecklistController) Toggle(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), checklist.ToggleItemInput{
		SessionID: sessionID,
		Kind:      entity.ChecklistKind(ctx.Param("kind")),
		Key:       ctx.Param("key"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToToggleItemResponse(output, c.money))
}

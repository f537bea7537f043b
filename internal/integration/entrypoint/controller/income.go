package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/income"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomeUseCase
	addUseCase    *income.AddIncomeUseCase
	removeUseCase *income.RemoveIncomeUseCase
	money         *dto.MoneyFormatter
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomeUseCase,
	addUseCase *income.AddIncomeUseCase,
	removeUseCase *income.RemoveIncomeUseCase,
	money *dto.MoneyFormatter,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
		money:         money,
	}
}

// List handles GET /sessions/:session_id/income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomeInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output, c.money))
}

// Add handles POST /sessions/:session_id/income requests.
func (c *IncomeController) Add(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.AddIncomeRequest
	if !bindOrAbort(ctx, &req) {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), income.AddIncomeInput{
		SessionID: sessionID,
		Source:    req.Source,
		Amount:    req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Entry, c.money))
}

// Remove handles DELETE /sessions/:session_id/income/:id requests.
func (c *IncomeController) Remove(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	entryID, ok := entryIDOrAbort(ctx)
	if !ok {
		return
	}

	err := c.removeUseCase.Execute(ctx.Request.Context(), income.RemoveIncomeInput{
		SessionID: sessionID,
		EntryID:   entryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

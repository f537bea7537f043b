package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/expense"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase      *expense.ListExpensesUseCase
	addUseCase       *expense.AddExpenseUseCase
	removeUseCase    *expense.RemoveExpenseUseCase
	breakdownUseCase *expense.GetBreakdownUseCase
	money            *dto.MoneyFormatter
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	addUseCase *expense.AddExpenseUseCase,
	removeUseCase *expense.RemoveExpenseUseCase,
	breakdownUseCase *expense.GetBreakdownUseCase,
	money *dto.MoneyFormatter,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:      listUseCase,
		addUseCase:       addUseCase,
		removeUseCase:    removeUseCase,
		breakdownUseCase: breakdownUseCase,
		money:            money,
	}
}

// List handles GET /sessions/:session_id/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output, c.money))
}

// Add handles POST /sessions/:session_id/expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.AddExpenseRequest
	if !bindOrAbort(ctx, &req) {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		SessionID:   sessionID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Entry, c.money))
}

// Remove handles DELETE /sessions/:session_id/expenses/:id requests.
func (c *ExpenseController) Remove(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	entryID, ok := entryIDOrAbort(ctx)
	if !ok {
		return
	}

	err := c.removeUseCase.Execute(ctx.Request.Context(), expense.RemoveExpenseInput{
		SessionID: sessionID,
		EntryID:   entryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Breakdown handles GET /sessions/:session_id/expenses/breakdown requests.
func (c *ExpenseController) Breakdown(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), expense.GetBreakdownInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output, c.money))
}

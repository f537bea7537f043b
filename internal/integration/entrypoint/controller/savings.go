package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/savings"
	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// SavingsController handles emergency fund endpoints.
type SavingsController struct {
	getUseCase     *savings.GetSavingsUseCase
	setFundUseCase *savings.SetFundUseCase
	setGoalUseCase *savings.SetGoalUseCase
	money          *dto.MoneyFormatter
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	getUseCase *savings.GetSavingsUseCase,
	setFundUseCase *savings.SetFundUseCase,
	setGoalUseCase *savings.SetGoalUseCase,
	money *dto.MoneyFormatter,
) *SavingsController {
	return &SavingsController{
		getUseCase:     getUseCase,
		setFundUseCase: setFundUseCase,
		setGoalUseCase: setGoalUseCase,
		money:          money,
	}
}

// Get handles GET /sessions/:session_id/savings requests.
func (c *SavingsController) Get(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), savings.GetSavingsInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsResponse(output, c.money))
}

// SetFund handles PUT /sessions/:session_id/savings/fund requests.
func (c *SavingsController) SetFund(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	amount, ok := bindAmountOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.setFundUseCase.Execute(ctx.Request.Context(), savings.SetFundInput{
		SessionID: sessionID,
		Amount:    amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsResponse(output, c.money))
}

// SetGoal handles PUT /sessions/:session_id/savings/goal requests.
func (c *SavingsController) SetGoal(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	amount, ok := bindAmountOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.setGoalUseCase.Execute(ctx.Request.Context(), savings.SetGoalInput{
		SessionID: sessionID,
		Amount:    amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsResponse(output, c.money))
}

func bindAmountOrAbort(ctx *gin.Context) (string, bool) {
	var req dto.SetAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Amount == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Request body must contain an amount",
			Code:  string(domainerror.ErrCodeMissingSavingsBody),
		})
		return "", false
	}
	return *req.Amount, true
}

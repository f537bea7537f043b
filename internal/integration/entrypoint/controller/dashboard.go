// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/dashboard"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
	money               *dto.MoneyFormatter
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *dashboard.GetDashboardUseCase, money *dto.MoneyFormatter) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
		money:               money,
	}
}

// Get handles GET /sessions/:session_id/dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	summary, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(summary, c.money))
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/session"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// SessionController handles session lifecycle endpoints.
type SessionController struct {
	startUseCase *session.StartSessionUseCase
	getUseCase   *session.GetSessionUseCase
	endUseCase   *session.EndSessionUseCase
	tracker      valueobject.TrackerConfig
	money        *dto.MoneyFormatter
}

// NewSessionController creates a new session controller instance.
func NewSessionController(
	startUseCase *session.StartSessionUseCase,
	getUseCase *session.GetSessionUseCase,
	endUseCase *session.EndSessionUseCase,
	tracker valueobject.TrackerConfig,
	money *dto.MoneyFormatter,
) *SessionController {
	return &SessionController{
		startUseCase: startUseCase,
		getUseCase:   getUseCase,
		endUseCase:   endUseCase,
		tracker:      tracker,
		money:        money,
	}
}

// Start handles POST /sessions requests.
func (c *SessionController) Start(ctx *gin.Context) {
	output, err := c.startUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionStateResponse(output.Session, output.Workspace, c.tracker, c.money))
}

// Get handles GET /sessions/:session_id requests.
func (c *SessionController) Get(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), session.GetSessionInput{SessionID: sessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionStateResponse(output.Session, output.Workspace, c.tracker, c.money))
}

// End handles DELETE /sessions/:session_id requests.
func (c *SessionController) End(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	if err := c.endUseCase.Execute(ctx.Request.Context(), session.EndSessionInput{SessionID: sessionID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

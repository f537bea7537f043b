package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/noiselife"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
	"github.com/eternal-wealth/toolkit/internal/integration/entrypoint/dto"
)

// NoiseLifeController handles noise/life endpoints.
type NoiseLifeController struct {
	listUseCase   *noiselife.ListNoiseLifeUseCase
	addUseCase    *noiselife.AddNoiseLifeUseCase
	removeUseCase *noiselife.RemoveNoiseLifeUseCase
}

// NewNoiseLifeController creates a new noise/life controller instance.
func NewNoiseLifeController(
	listUseCase *noiselife.ListNoiseLifeUseCase,
	addUseCase *noiselife.AddNoiseLifeUseCase,
	removeUseCase *noiselife.RemoveNoiseLifeUseCase,
) *NoiseLifeController {
	return &NoiseLifeController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		removeUseCase: removeUseCase,
	}
}

// List handles GET /sessions/:session_id/noise-life requests. The optional
// type query parameter filters by noise or life.
func (c *NoiseLifeController) List(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), noiselife.ListNoiseLifeInput{
		SessionID: sessionID,
		Type:      entity.NoiseLifeType(ctx.Query("type")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoiseLifeListResponse(output))
}

// Add handles POST /sessions/:session_id/noise-life requests.
func (c *NoiseLifeController) Add(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.AddNoiseLifeRequest
	if !bindOrAbort(ctx, &req) {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), noiselife.AddNoiseLifeInput{
		SessionID: sessionID,
		Item:      req.Item,
		Type:      entity.NoiseLifeType(req.Type),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoiseLifeResponse(output.Entry))
}

// Remove handles DELETE /sessions/:session_id/noise-life/:id requests.
func (c *NoiseLifeController) Remove(ctx *gin.Context) {
	sessionID, ok := sessionIDOrAbort(ctx)
	if !ok {
		return
	}
	entryID, ok := entryIDOrAbort(ctx)
	if !ok {
		return
	}

	err := c.removeUseCase.Execute(ctx.Request.Context(), noiselife.RemoveNoiseLifeInput{
		SessionID: sessionID,
		EntryID:   entryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

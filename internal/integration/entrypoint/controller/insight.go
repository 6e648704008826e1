// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ai/backend/internal/application/usecase/insight"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
	"github.com/finance-ai/backend/internal/integration/entrypoint/dto"
	"github.com/finance-ai/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles AI advice endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightUseCase
	quickUseCase    *insight.QuickInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	generateUseCase *insight.GenerateInsightUseCase,
	quickUseCase *insight.QuickInsightUseCase,
) *InsightController {
	return &InsightController{
		generateUseCase: generateUseCase,
		quickUseCase:    quickUseCase,
	}
}

// Generate handles POST /insights requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.GenerateInsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightInput{
		UserID:   userID,
		Question: req.Question,
		Model:    req.Model,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightResponse{Advice: output.Advice})
}

// Quick handles POST /insights/quick requests.
func (c *InsightController) Quick(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.QuickInsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.quickUseCase.Execute(ctx.Request.Context(), insight.QuickInsightInput{
		UserID: userID,
		Topic:  req.Topic,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightResponse{Advice: output.Advice})
}

// handleInsightError handles insight errors and returns appropriate HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		ctx.JSON(c.getStatusCodeForInsightError(insightErr.Code), dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsightError maps insight error codes to HTTP status codes.
func (c *InsightController) getStatusCodeForInsightError(code domainerror.InsightErrorCode) int {
	switch code {
	case domainerror.ErrCodeAdvisorUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeUnknownTopic:
		return http.StatusBadRequest
	case domainerror.ErrCodeAdvisorFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

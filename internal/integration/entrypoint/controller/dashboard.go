// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-ai/backend/internal/application/usecase/dashboard"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
	"github.com/finance-ai/backend/internal/integration/entrypoint/dto"
	"github.com/finance-ai/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles analytics endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
	}
}

// Get handles GET /dashboard requests. The optional top_n query parameter
// bounds the category ranking.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	topN := 0
	if raw := ctx.Query("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "top_n must be a non-negative integer",
			})
			return
		}
		topN = parsed
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		UserID: userID,
		TopN:   topN,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

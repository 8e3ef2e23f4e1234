package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asadk/maktab/internal/app/services"
	"github.com/asadk/maktab/internal/middleware"
)

// DashboardController serves the landing page summary block.
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats handles GET /api/dashboard/stats.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

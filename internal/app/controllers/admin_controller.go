package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// AdminController handles the analytics dashboard
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// DashboardStats returns the admin dashboard counts
// @Summary Admin dashboard statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/stats [get]
func (c *AdminController) DashboardStats(ctx *gin.Context) {
	stats, err := c.adminService.DashboardStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardStatsResponse{
		Success: true,
		Stats:   stats,
	})
}

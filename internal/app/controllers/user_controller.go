package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// UserController handles user administration and alumni browsing
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers returns every account
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserListResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{
		Success: true,
		Count:   len(users),
		Users:   users,
	})
}

// ApproveAlumni marks an alumni account approved
// @Summary Approve an alumni account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User id"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "User is not an alumni"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{userId}/approve [patch]
func (c *UserController) ApproveAlumni(ctx *gin.Context) {
	user, err := c.userService.ApproveAlumni(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{
		Success: true,
		User:    user,
	})
}

// ListApprovedAlumni returns approved alumni accounts
// @Summary List approved alumni
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AlumniListResponse
// @Router /users/alumni/approved [get]
func (c *UserController) ListApprovedAlumni(ctx *gin.Context) {
	alumni, err := c.userService.ListApprovedAlumni(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumniListResponse{
		Success: true,
		Count:   len(alumni),
		Alumni:  alumni,
	})
}

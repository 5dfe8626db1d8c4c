package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appauth "github.com/alumniconnect/backend/internal/app/auth"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// ProfileController handles profiles and the alumni directory
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// GetMyProfile returns the caller's profile, creating it on first read
// @Summary Get own profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Router /profiles/me [get]
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	profile, user, err := c.profileService.GetMyProfile(ctx.Request.Context(), identity.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		Profile: profile,
		User:    user,
	})
}

// UpdateMyProfile applies a partial update to the caller's profile
// @Summary Update own profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /profiles/me [put]
func (c *ProfileController) UpdateMyProfile(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	profile, err := c.profileService.UpdateMyProfile(ctx.Request.Context(), identity.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		Profile: profile,
	})
}

// Directory returns approved alumni joined with their profiles
// @Summary Alumni directory
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DirectoryResponse
// @Router /profiles/directory [get]
func (c *ProfileController) Directory(ctx *gin.Context) {
	records, err := c.profileService.Directory(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DirectoryResponse{
		Success: true,
		Count:   len(records),
		Records: records,
	})
}

// GetProfileByUser returns another user's profile with its owner
// @Summary Get a user's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User id"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profiles/{userId} [get]
func (c *ProfileController) GetProfileByUser(ctx *gin.Context) {
	profile, user, err := c.profileService.GetProfileByUser(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		Profile: profile,
		User:    user,
	})
}

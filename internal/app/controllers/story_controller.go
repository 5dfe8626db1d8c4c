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

// StoryController handles alumni success stories
type StoryController struct {
	storyService *services.StoryService
	logger       zerolog.Logger
}

// NewStoryController creates a new StoryController
func NewStoryController(storyService *services.StoryService, logger zerolog.Logger) *StoryController {
	return &StoryController{
		storyService: storyService,
		logger:       logger,
	}
}

// ListStories returns every story, featured first then newest
// @Summary List success stories
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StoryListResponse
// @Router /success-stories [get]
func (c *StoryController) ListStories(ctx *gin.Context) {
	stories, err := c.storyService.ListStories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StoryListResponse{
		Success: true,
		Count:   len(stories),
		Stories: stories,
	})
}

// GetStory returns a single story
// @Summary Get a success story
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param storyId path string true "Story id"
// @Success 200 {object} dto.StoryResponse
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Router /success-stories/{storyId} [get]
func (c *StoryController) GetStory(ctx *gin.Context) {
	story, err := c.storyService.GetStory(ctx.Request.Context(), ctx.Param("storyId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StoryResponse{
		Success: true,
		Story:   story,
	})
}

// CreateStory creates a story authored by the caller
// @Summary Create a success story
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStoryRequest true "Story payload"
// @Success 201 {object} dto.StoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /success-stories [post]
func (c *StoryController) CreateStory(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	var req dto.CreateStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	story, err := c.storyService.CreateStory(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StoryResponse{
		Success: true,
		Story:   story,
	})
}

// UpdateStory applies a partial update to a story
// @Summary Update a success story
// @Tags stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storyId path string true "Story id"
// @Param request body dto.UpdateStoryRequest true "Fields to update"
// @Success 200 {object} dto.StoryResponse
// @Failure 403 {object} dto.ErrorResponse "Not authorized to modify this story"
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Router /success-stories/{storyId} [patch]
func (c *StoryController) UpdateStory(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	var req dto.UpdateStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	story, err := c.storyService.UpdateStory(ctx.Request.Context(), identity, ctx.Param("storyId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StoryResponse{
		Success: true,
		Story:   story,
	})
}

// DeleteStory removes a story
// @Summary Delete a success story
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param storyId path string true "Story id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Not authorized to delete this story"
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Router /success-stories/{storyId} [delete]
func (c *StoryController) DeleteStory(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	if err := c.storyService.DeleteStory(ctx.Request.Context(), identity, ctx.Param("storyId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

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

// MentorshipController handles mentorship offers
type MentorshipController struct {
	mentorshipService *services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService *services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// ListPosts returns every mentorship post, newest first
// @Summary List mentorship posts
// @Tags mentorship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MentorshipPostListResponse
// @Router /mentorship [get]
func (c *MentorshipController) ListPosts(ctx *gin.Context) {
	posts, err := c.mentorshipService.ListPosts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MentorshipPostListResponse{
		Success: true,
		Count:   len(posts),
		Posts:   posts,
	})
}

// CreatePost creates a mentorship offer
// @Summary Create a mentorship post
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMentorshipPostRequest true "Mentorship payload"
// @Success 201 {object} dto.MentorshipPostResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /mentorship [post]
func (c *MentorshipController) CreatePost(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	var req dto.CreateMentorshipPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	post, err := c.mentorshipService.CreatePost(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MentorshipPostResponse{
		Success: true,
		Post:    post,
	})
}

package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateMentorshipPostRequest carries a new mentorship offer
type CreateMentorshipPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// MentorshipPostResponse wraps a single mentorship post
type MentorshipPostResponse struct {
	Success bool                   `json:"success"`
	Post    *models.MentorshipPost `json:"post"`
}

// MentorshipPostListResponse wraps a mentorship post listing
type MentorshipPostListResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	Posts   []*models.MentorshipPost `json:"posts"`
}

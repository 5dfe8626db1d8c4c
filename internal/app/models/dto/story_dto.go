package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateStoryRequest carries a new success story
type CreateStoryRequest struct {
	Title          string   `json:"title" binding:"required"`
	Summary        string   `json:"summary"`
	Content        string   `json:"content" binding:"required"`
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	GraduationYear *int     `json:"graduationYear"`
	Tags           []string `json:"tags"`
	Featured       bool     `json:"featured"`
}

// UpdateStoryRequest carries a partial story update; nil fields are untouched
type UpdateStoryRequest struct {
	Title          *string  `json:"title"`
	Summary        *string  `json:"summary"`
	Content        *string  `json:"content"`
	Role           *string  `json:"role"`
	Company        *string  `json:"company"`
	GraduationYear *int     `json:"graduationYear"`
	Tags           []string `json:"tags"`
	Featured       *bool    `json:"featured"`
}

// StoryResponse wraps a single success story
type StoryResponse struct {
	Success bool                 `json:"success"`
	Story   *models.SuccessStory `json:"story"`
}

// StoryListResponse wraps a success story listing
type StoryListResponse struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Stories []*models.SuccessStory `json:"stories"`
}

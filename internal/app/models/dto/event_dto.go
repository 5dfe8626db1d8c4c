package dto

import (
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateEventRequest carries a new event
type CreateEventRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description" binding:"required"`
	StartDate   time.Time            `json:"startDate" binding:"required"`
	EndDate     *time.Time           `json:"endDate"`
	Location    string               `json:"location" binding:"required"`
	Tags        []string             `json:"tags"`
	Audience    models.EventAudience `json:"audience"`
}

// UpdateEventRequest carries a partial event update; nil fields are untouched
type UpdateEventRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	StartDate   *time.Time            `json:"startDate"`
	EndDate     *time.Time            `json:"endDate"`
	Location    *string               `json:"location"`
	Tags        []string              `json:"tags"`
	Audience    *models.EventAudience `json:"audience"`
	IsPublished *bool                 `json:"isPublished"`
}

// EventResponse wraps a single event
type EventResponse struct {
	Success bool          `json:"success"`
	Event   *models.Event `json:"event"`
}

// EventListResponse wraps an event listing
type EventListResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Events  []*models.Event `json:"events"`
}

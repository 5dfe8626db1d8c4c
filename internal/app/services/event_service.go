package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	appauth "github.com/alumniconnect/backend/internal/app/auth"
	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// EventService handles institution events
type EventService struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.IEventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// ListEvents returns published events, soonest first. With upcomingOnly,
// events that already started are skipped.
func (s *EventService) ListEvents(ctx context.Context, upcomingOnly bool) ([]*models.Event, error) {
	return s.eventRepo.ListPublished(ctx, upcomingOnly)
}

// GetEvent returns one event by id
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Event not found")
		}
		return nil, err
	}
	return event, nil
}

// CreateEvent creates an event. Events are managed by admins only, so the
// route gate carries the authorization and no ownership check happens here.
func (s *EventService) CreateEvent(ctx context.Context, identity appauth.Identity, req *dto.CreateEventRequest) (*models.Event, error) {
	creatorID, err := bson.ObjectIDFromHex(identity.ID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	audience := req.Audience
	if audience == "" {
		audience = models.AudienceAll
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Tags:        req.Tags,
		Audience:    audience,
		IsPublished: true,
		CreatedBy:   creatorID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	logger.Info().Str("eventID", event.ID.Hex()).Str("userID", identity.ID).Msg("Event created")
	return event, nil
}

// UpdateEvent applies a partial update to an event
func (s *EventService) UpdateEvent(ctx context.Context, eventID string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Tags != nil {
		event.Tags = req.Tags
	}
	if req.Audience != nil {
		event.Audience = *req.Audience
	}
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}

	if event.EndDate != nil && event.EndDate.Before(event.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event
func (s *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Event not found")
		}
		return err
	}

	logger.Info().Str("eventID", eventID).Msg("Event deleted")
	return nil
}

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

// EventController handles institution events
type EventController struct {
	eventService *services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// ListEvents returns published events, soonest first
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param upcoming query bool false "Only events that have not started yet"
// @Success 200 {object} dto.EventListResponse
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	upcomingOnly := ctx.Query("upcoming") == "true"

	events, err := c.eventService.ListEvents(ctx.Request.Context(), upcomingOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventListResponse{
		Success: true,
		Count:   len(events),
		Events:  events,
	})
}

// GetEvent returns a single event
// @Summary Get an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event id"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{eventId} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	event, err := c.eventService.GetEvent(ctx.Request.Context(), ctx.Param("eventId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventResponse{
		Success: true,
		Event:   event,
	})
}

// CreateEvent creates an event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.EventResponse{
		Success: true,
		Event:   event,
	})
}

// UpdateEvent applies a partial update to an event
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event id"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{eventId} [patch]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), ctx.Param("eventId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EventResponse{
		Success: true,
		Event:   event,
	})
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{eventId} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	if err := c.eventService.DeleteEvent(ctx.Request.Context(), ctx.Param("eventId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

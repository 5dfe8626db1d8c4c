package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// EventRepository handles event collection operations
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		coll: db.Collection(EventsCollection),
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.ID.IsZero() {
		event.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		logger.Error().Err(err).Str("title", event.Title).Msg("Error inserting event")
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// FindByID retrieves an event by hex id
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	event := &models.Event{}
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Str("eventID", id).Msg("Error finding event by ID")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// ListPublished retrieves published events ordered by start date, optionally
// limited to events that have not started yet, with the creator joined in.
func (r *EventRepository) ListPublished(ctx context.Context, upcomingOnly bool) ([]*models.Event, error) {
	match := bson.M{"isPublished": true}
	if upcomingOnly {
		match["startDate"] = bson.M{"$gte": time.Now().UTC()}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "startDate", Value: 1}}}},
	}
	pipeline = append(pipeline, creatorLookupStages("createdBy", "creator")...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying events")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding events: %w", err)
	}

	return events, nil
}

// Update replaces the mutable fields of an existing event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":       event.Title,
		"description": event.Description,
		"startDate":   event.StartDate,
		"endDate":     event.EndDate,
		"location":    event.Location,
		"tags":        event.Tags,
		"audience":    event.Audience,
		"isPublished": event.IsPublished,
		"updatedAt":   event.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": event.ID}, update)
	if err != nil {
		logger.Error().Err(err).Str("eventID", event.ID.Hex()).Msg("Error updating event")
		return fmt.Errorf("error updating event: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes an event by hex id
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		logger.Error().Err(err).Str("eventID", id).Msg("Error deleting event")
		return fmt.Errorf("error deleting event: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Stats aggregates total and upcoming event counts for the dashboard
func (r *EventRepository) Stats(ctx context.Context) (*dto.EventStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"upcoming": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$gte": bson.A{"$startDate", time.Now().UTC()}},
					1,
					0,
				},
			}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating event stats: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Total    int64 `bson:"total"`
		Upcoming int64 `bson:"upcoming"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("error decoding event stats: %w", err)
	}

	stats := &dto.EventStats{}
	if len(buckets) > 0 {
		stats.Total = buckets[0].Total
		stats.Upcoming = buckets[0].Upcoming
	}

	return stats, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// StoryRepository handles success story collection operations
type StoryRepository struct {
	coll *mongo.Collection
}

// NewStoryRepository creates a new StoryRepository
func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{
		coll: db.Collection(SuccessStoriesCollection),
	}
}

// Create inserts a new success story
func (r *StoryRepository) Create(ctx context.Context, story *models.SuccessStory) error {
	now := time.Now().UTC()
	story.CreatedAt = now
	story.UpdatedAt = now
	if story.ID.IsZero() {
		story.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, story); err != nil {
		logger.Error().Err(err).Str("title", story.Title).Msg("Error inserting success story")
		return fmt.Errorf("error creating success story: %w", err)
	}

	return nil
}

// FindByID retrieves a success story by hex id
func (r *StoryRepository) FindByID(ctx context.Context, id string) (*models.SuccessStory, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	story := &models.SuccessStory{}
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(story)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Str("storyID", id).Msg("Error finding story by ID")
		return nil, fmt.Errorf("error getting story by ID: %w", err)
	}

	return story, nil
}

// List retrieves all stories, featured first then newest, with the author
// joined in.
func (r *StoryRepository) List(ctx context.Context) ([]*models.SuccessStory, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "featured", Value: -1},
			{Key: "createdAt", Value: -1},
		}}},
	}
	pipeline = append(pipeline, creatorLookupStages("author", "authorRef")...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying success stories")
		return nil, fmt.Errorf("error querying success stories: %w", err)
	}
	defer cursor.Close(ctx)

	stories := []*models.SuccessStory{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("error decoding success stories: %w", err)
	}

	return stories, nil
}

// Update replaces the mutable fields of an existing story
func (r *StoryRepository) Update(ctx context.Context, story *models.SuccessStory) error {
	story.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":          story.Title,
		"summary":        story.Summary,
		"content":        story.Content,
		"role":           story.Role,
		"company":        story.Company,
		"graduationYear": story.GraduationYear,
		"tags":           story.Tags,
		"featured":       story.Featured,
		"updatedAt":      story.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": story.ID}, update)
	if err != nil {
		logger.Error().Err(err).Str("storyID", story.ID.Hex()).Msg("Error updating story")
		return fmt.Errorf("error updating story: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes a story by hex id
func (r *StoryRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		logger.Error().Err(err).Str("storyID", id).Msg("Error deleting story")
		return fmt.Errorf("error deleting story: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

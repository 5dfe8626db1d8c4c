package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// MentorshipRepository handles mentorship post collection operations
type MentorshipRepository struct {
	coll *mongo.Collection
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *mongo.Database) *MentorshipRepository {
	return &MentorshipRepository{
		coll: db.Collection(MentorshipPostsCollection),
	}
}

// Create inserts a new mentorship post
func (r *MentorshipRepository) Create(ctx context.Context, post *models.MentorshipPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.ID.IsZero() {
		post.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		logger.Error().Err(err).Str("title", post.Title).Msg("Error inserting mentorship post")
		return fmt.Errorf("error creating mentorship post: %w", err)
	}

	return nil
}

// List retrieves all mentorship posts, newest first, with the creator joined in
func (r *MentorshipRepository) List(ctx context.Context) ([]*models.MentorshipPost, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, creatorLookupStages("createdBy", "creator")...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying mentorship posts")
		return nil, fmt.Errorf("error querying mentorship posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*models.MentorshipPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("error decoding mentorship posts: %w", err)
	}

	return posts, nil
}

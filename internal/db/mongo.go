// Package db manages the MongoDB connection and collection indexes.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// ConnectTimeout bounds the initial connection and ping
const ConnectTimeout = 10 * time.Second

// Connect establishes the MongoDB connection and verifies it with a ping
func Connect(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info().Str("uri", uri).Msg("Connected to MongoDB")
	return client, nil
}

// Disconnect closes the MongoDB connection
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}
	return nil
}

// EnsureIndexes creates the collection indexes at startup. Index creation
// is idempotent; existing matching indexes are left alone.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		repositories.UsersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "isApproved", Value: 1}}},
		},
		repositories.ProfilesCollection: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "department", Value: 1}, {Key: "graduationYear", Value: 1}}},
			{Keys: bson.D{{Key: "skills.name", Value: 1}}},
		},
		repositories.JobsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		repositories.EventsCollection: {
			{Keys: bson.D{{Key: "startDate", Value: 1}}},
			{Keys: bson.D{{Key: "audience", Value: 1}, {Key: "isPublished", Value: 1}}},
		},
		repositories.SuccessStoriesCollection: {
			{Keys: bson.D{{Key: "featured", Value: -1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "company", Value: 1}}},
		},
		repositories.MentorshipPostsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}

	logger.Info().Msg("Collection indexes ensured")
	return nil
}

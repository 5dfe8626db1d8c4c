package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// ProfileRepository handles profile collection operations
type ProfileRepository struct {
	coll *mongo.Collection
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		coll: db.Collection(ProfilesCollection),
	}
}

// FindByUser retrieves the profile owned by the given user
func (r *ProfileRepository) FindByUser(ctx context.Context, userID string) (*models.Profile, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{}
	err = r.coll.FindOne(ctx, bson.M{"user": objectID}).Decode(profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error finding profile by user")
		return nil, fmt.Errorf("error getting profile by user: %w", err)
	}

	return profile, nil
}

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.ID.IsZero() {
		profile.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		logger.Error().Err(err).Str("userID", profile.User.Hex()).Msg("Error inserting profile")
		return fmt.Errorf("error creating profile: %w", err)
	}

	return nil
}

// Upsert applies the given field updates to the user's profile, creating it
// if the user has never touched theirs, and returns the updated document.
func (r *ProfileRepository) Upsert(ctx context.Context, userID string, update bson.M) (*models.Profile, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	update["updatedAt"] = now

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	profile := &models.Profile{}
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"user": objectID},
		bson.M{
			"$set":         update,
			"$setOnInsert": bson.M{"user": objectID, "createdAt": now},
		},
		opts,
	).Decode(profile)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error upserting profile")
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return profile, nil
}

// FindByUsers retrieves the profiles belonging to the given users
func (r *ProfileRepository) FindByUsers(ctx context.Context, userIDs []bson.ObjectID) ([]*models.Profile, error) {
	if len(userIDs) == 0 {
		return []*models.Profile{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"user": bson.M{"$in": userIDs}})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying profiles by users")
		return nil, fmt.Errorf("error querying profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []*models.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("error decoding profiles: %w", err)
	}

	return profiles, nil
}

// AlumniByCompany counts approved alumni grouped by their current company,
// largest group first.
func (r *ProfileRepository) AlumniByCompany(ctx context.Context, limit int64) ([]*dto.CompanyCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"company": bson.M{"$nin": bson.A{"", nil}}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         UsersCollection,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		bson.D{{Key: "$unwind", Value: "$owner"}},
		bson.D{{Key: "$match", Value: bson.M{
			"owner.role":       models.RoleAlumni,
			"owner.isApproved": true,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$company",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating alumni by company")
		return nil, fmt.Errorf("error aggregating alumni by company: %w", err)
	}
	defer cursor.Close(ctx)

	counts := []*dto.CompanyCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("error decoding company counts: %w", err)
	}

	return counts, nil
}

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
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// UserRepository handles user collection operations
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		coll: db.Collection(UsersCollection),
	}
}

// Create inserts a new user. The unique email index turns concurrent
// duplicate registrations into ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailTaken
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error inserting user")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by hex id
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user := &models.User{}
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error finding user by ID")
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error finding user by email")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// FindAll retrieves every user, newest first
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying users")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	return users, nil
}

// FindApprovedAlumni retrieves all approved alumni users
func (r *UserRepository) FindApprovedAlumni(ctx context.Context) ([]*models.User, error) {
	filter := bson.M{"role": models.RoleAlumni, "isApproved": true}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying approved alumni")
		return nil, fmt.Errorf("error querying approved alumni: %w", err)
	}
	defer cursor.Close(ctx)

	alumni := []*models.User{}
	if err := cursor.All(ctx, &alumni); err != nil {
		return nil, fmt.Errorf("error decoding approved alumni: %w", err)
	}

	return alumni, nil
}

// SetApproved flips the approval flag and returns the updated user
func (r *UserRepository) SetApproved(ctx context.Context, id string, approved bool) (*models.User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	update := bson.M{"$set": bson.M{
		"isApproved": approved,
		"updatedAt":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	user := &models.User{}
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error updating approval flag")
		return nil, fmt.Errorf("error updating approval flag: %w", err)
	}

	return user, nil
}

// CountByRole counts users holding the given role
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}
	return count, nil
}

// CountPendingAlumni counts alumni still waiting for approval
func (r *UserRepository) CountPendingAlumni(ctx context.Context) (int64, error) {
	filter := bson.M{"role": models.RoleAlumni, "isApproved": false}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting pending alumni: %w", err)
	}
	return count, nil
}

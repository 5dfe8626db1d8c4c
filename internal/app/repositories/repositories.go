// Package repositories contains the MongoDB collection access layer.
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// Collection names
const (
	UsersCollection           = "users"
	ProfilesCollection        = "profiles"
	JobsCollection            = "jobs"
	EventsCollection          = "events"
	MentorshipPostsCollection = "mentorship_posts"
	SuccessStoriesCollection  = "success_stories"
)

// IUserRepository abstracts user persistence for services and middleware
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	FindApprovedAlumni(ctx context.Context) ([]*models.User, error)
	SetApproved(ctx context.Context, id string, approved bool) (*models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	CountPendingAlumni(ctx context.Context) (int64, error)
}

// IProfileRepository abstracts profile persistence
type IProfileRepository interface {
	FindByUser(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Upsert(ctx context.Context, userID string, update bson.M) (*models.Profile, error)
	FindByUsers(ctx context.Context, userIDs []bson.ObjectID) ([]*models.Profile, error)
	AlumniByCompany(ctx context.Context, limit int64) ([]*dto.CompanyCount, error)
}

// IJobRepository abstracts job posting persistence
type IJobRepository interface {
	Create(ctx context.Context, job *models.JobPost) error
	FindByID(ctx context.Context, id string) (*models.JobPost, error)
	List(ctx context.Context, filter dto.JobListFilter) ([]*models.JobPost, error)
	Update(ctx context.Context, job *models.JobPost) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (*dto.JobStats, error)
}

// IEventRepository abstracts event persistence
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	ListPublished(ctx context.Context, upcomingOnly bool) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.EventStats, error)
}

// IMentorshipRepository abstracts mentorship post persistence
type IMentorshipRepository interface {
	Create(ctx context.Context, post *models.MentorshipPost) error
	List(ctx context.Context) ([]*models.MentorshipPost, error)
}

// IStoryRepository abstracts success story persistence
type IStoryRepository interface {
	Create(ctx context.Context, story *models.SuccessStory) error
	FindByID(ctx context.Context, id string) (*models.SuccessStory, error)
	List(ctx context.Context) ([]*models.SuccessStory, error)
	Update(ctx context.Context, story *models.SuccessStory) error
	Delete(ctx context.Context, id string) error
}

// Repositories bundles every repository for dependency wiring
type Repositories struct {
	UserRepository       *UserRepository
	ProfileRepository    *ProfileRepository
	JobRepository        *JobRepository
	EventRepository      *EventRepository
	MentorshipRepository *MentorshipRepository
	StoryRepository      *StoryRepository
}

// NewRepositories creates all repositories backed by the given database
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		ProfileRepository:    NewProfileRepository(db),
		JobRepository:        NewJobRepository(db),
		EventRepository:      NewEventRepository(db),
		MentorshipRepository: NewMentorshipRepository(db),
		StoryRepository:      NewStoryRepository(db),
	}
}

// parseObjectID converts a hex id into an ObjectID; unknown or malformed
// ids surface as not-found so handlers return 404 rather than 500.
func parseObjectID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, apperrors.ErrNotFound
	}
	return objectID, nil
}

// creatorLookupStages joins the creators of listed documents into the given
// field using the trimmed user projection.
func creatorLookupStages(localField, as string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         UsersCollection,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$project", Value: bson.M{
					"name":           1,
					"email":          1,
					"role":           1,
					"graduationYear": 1,
				}}},
			},
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + as,
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

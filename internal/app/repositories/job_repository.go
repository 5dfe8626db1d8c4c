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

// JobRepository handles job posting collection operations
type JobRepository struct {
	coll *mongo.Collection
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{
		coll: db.Collection(JobsCollection),
	}
}

// Create inserts a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.JobPost) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.ID.IsZero() {
		job.ID = bson.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, job); err != nil {
		logger.Error().Err(err).Str("title", job.Title).Msg("Error inserting job")
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// FindByID retrieves a job posting by hex id
func (r *JobRepository) FindByID(ctx context.Context, id string) (*models.JobPost, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	job := &models.JobPost{}
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Str("jobID", id).Msg("Error finding job by ID")
		return nil, fmt.Errorf("error getting job by ID: %w", err)
	}

	return job, nil
}

// List retrieves job postings matching the filter, newest first, with the
// creator joined in.
func (r *JobRepository) List(ctx context.Context, filter dto.JobListFilter) ([]*models.JobPost, error) {
	match := bson.M{}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.Type != "" {
		match["type"] = filter.Type
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, creatorLookupStages("createdBy", "creator")...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying jobs")
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := []*models.JobPost{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("error decoding jobs: %w", err)
	}

	return jobs, nil
}

// Update replaces the mutable fields of an existing job posting
func (r *JobRepository) Update(ctx context.Context, job *models.JobPost) error {
	job.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":          job.Title,
		"description":    job.Description,
		"company":        job.Company,
		"location":       job.Location,
		"type":           job.Type,
		"employmentType": job.EmploymentType,
		"status":         job.Status,
		"applicationUrl": job.ApplicationURL,
		"tags":           job.Tags,
		"expiresAt":      job.ExpiresAt,
		"updatedAt":      job.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": job.ID}, update)
	if err != nil {
		logger.Error().Err(err).Str("jobID", job.ID.Hex()).Msg("Error updating job")
		return fmt.Errorf("error updating job: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes a job posting by hex id
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		logger.Error().Err(err).Str("jobID", id).Msg("Error deleting job")
		return fmt.Errorf("error deleting job: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// CountByStatus groups job postings by status for the dashboard
func (r *JobRepository) CountByStatus(ctx context.Context) (*dto.JobStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating job counts: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Status models.JobStatus `bson:"_id"`
		Count  int64            `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("error decoding job counts: %w", err)
	}

	stats := &dto.JobStats{}
	for _, bucket := range buckets {
		switch bucket.Status {
		case models.JobStatusOpen:
			stats.Open = bucket.Count
		case models.JobStatusClosed:
			stats.Closed = bucket.Count
		}
	}

	return stats, nil
}

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

// JobService handles job and internship postings
type JobService struct {
	jobRepo repositories.IJobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.IJobRepository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// ListJobs returns postings matching the filter, newest first. An empty
// status defaults to open so closed postings stay out of the board.
func (s *JobService) ListJobs(ctx context.Context, filter dto.JobListFilter) ([]*models.JobPost, error) {
	if filter.Status == "" {
		filter.Status = models.JobStatusOpen
	}
	return s.jobRepo.List(ctx, filter)
}

// GetJob returns one posting by id
func (s *JobService) GetJob(ctx context.Context, jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// CreateJob creates a posting owned by the caller
func (s *JobService) CreateJob(ctx context.Context, identity appauth.Identity, req *dto.CreateJobRequest) (*models.JobPost, error) {
	creatorID, err := bson.ObjectIDFromHex(identity.ID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	jobType := req.Type
	if jobType == "" {
		jobType = models.JobTypeJob
	}
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentFullTime
	}

	job := &models.JobPost{
		Title:          req.Title,
		Description:    req.Description,
		Company:        req.Company,
		Location:       req.Location,
		Type:           jobType,
		EmploymentType: employmentType,
		Status:         models.JobStatusOpen,
		ApplicationURL: req.ApplicationURL,
		Tags:           req.Tags,
		CreatedBy:      creatorID,
		ExpiresAt:      req.ExpiresAt,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	logger.Info().Str("jobID", job.ID.Hex()).Str("userID", identity.ID).Msg("Job posting created")
	return job, nil
}

// UpdateJob applies a partial update to a posting the caller owns. Admins
// may update any posting.
func (s *JobService) UpdateJob(ctx context.Context, identity appauth.Identity, jobID string, req *dto.UpdateJobRequest) (*models.JobPost, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !appauth.CanModify(identity, job.CreatedBy.Hex()) {
		return nil, apperrors.NewForbiddenError("Not authorized to modify this job")
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.ApplicationURL != nil {
		job.ApplicationURL = *req.ApplicationURL
	}
	if req.Tags != nil {
		job.Tags = req.Tags
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = req.ExpiresAt
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob removes a posting the caller owns. Admins may delete any
// posting.
func (s *JobService) DeleteJob(ctx context.Context, identity appauth.Identity, jobID string) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}

	if !appauth.CanModify(identity, job.CreatedBy.Hex()) {
		return apperrors.NewForbiddenError("Not authorized to delete this job")
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return err
	}

	logger.Info().Str("jobID", jobID).Str("userID", identity.ID).Msg("Job posting deleted")
	return nil
}

package dto

import (
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateJobRequest carries a new job posting
type CreateJobRequest struct {
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description" binding:"required"`
	Company        string                `json:"company" binding:"required"`
	Location       string                `json:"location"`
	Type           models.JobType        `json:"type"`
	EmploymentType models.EmploymentType `json:"employmentType"`
	ApplicationURL string                `json:"applicationUrl"`
	Tags           []string              `json:"tags"`
	ExpiresAt      *time.Time            `json:"expiresAt"`
}

// UpdateJobRequest carries a partial job update; nil fields are untouched
type UpdateJobRequest struct {
	Title          *string                `json:"title"`
	Description    *string                `json:"description"`
	Company        *string                `json:"company"`
	Location       *string                `json:"location"`
	Type           *models.JobType        `json:"type"`
	EmploymentType *models.EmploymentType `json:"employmentType"`
	Status         *models.JobStatus      `json:"status"`
	ApplicationURL *string                `json:"applicationUrl"`
	Tags           []string               `json:"tags"`
	ExpiresAt      *time.Time             `json:"expiresAt"`
}

// JobListFilter narrows the job listing
type JobListFilter struct {
	Status models.JobStatus
	Type   models.JobType
}

// JobResponse wraps a single job posting
type JobResponse struct {
	Success bool            `json:"success"`
	Job     *models.JobPost `json:"job"`
}

// JobListResponse wraps a job listing
type JobListResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Jobs    []*models.JobPost `json:"jobs"`
}

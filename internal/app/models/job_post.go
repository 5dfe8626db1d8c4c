package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// JobType distinguishes full job postings from internships
type JobType string

const (
	JobTypeJob        JobType = "job"
	JobTypeInternship JobType = "internship"
)

// JobStatus represents the lifecycle state of a posting
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// EmploymentType describes the engagement model of a posting
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// JobPost defines a job or internship posting in the 'jobs' collection
type JobPost struct {
	ID             bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title          string         `json:"title" bson:"title"`
	Description    string         `json:"description" bson:"description"`
	Company        string         `json:"company" bson:"company"`
	Location       string         `json:"location" bson:"location"`
	Type           JobType        `json:"type" bson:"type"`
	EmploymentType EmploymentType `json:"employmentType" bson:"employmentType"`
	Status         JobStatus      `json:"status" bson:"status"`
	ApplicationURL string         `json:"applicationUrl,omitempty" bson:"applicationUrl,omitempty"`
	Tags           []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedBy      bson.ObjectID  `json:"createdBy" bson:"createdBy"`
	ExpiresAt      *time.Time     `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt" bson:"updatedAt"`

	Creator *UserRef `json:"creator,omitempty" bson:"creator,omitempty"` // joined on reads, never written
}

// UserRef is the trimmed user projection embedded when listings join creators
type UserRef struct {
	ID             bson.ObjectID `json:"id" bson:"_id"`
	Name           string        `json:"name" bson:"name"`
	Email          string        `json:"email" bson:"email"`
	Role           Role          `json:"role" bson:"role"`
	GraduationYear *int          `json:"graduationYear,omitempty" bson:"graduationYear,omitempty"`
}

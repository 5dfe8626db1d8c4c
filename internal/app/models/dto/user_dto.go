package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// UserListResponse wraps the full user listing for admins
type UserListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Users   []*models.User `json:"users"`
}

// UserResponse wraps a single user record
type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// AlumniListResponse wraps the approved alumni listing
type AlumniListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Alumni  []*models.User `json:"alumni"`
}

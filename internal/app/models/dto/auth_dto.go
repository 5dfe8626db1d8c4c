package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name           string      `json:"name" binding:"required"`
	Email          string      `json:"email" binding:"required,email"`
	Password       string      `json:"password" binding:"required,min=8"`
	Role           models.Role `json:"role"`
	CollegeID      string      `json:"collegeId" binding:"required"`
	GraduationYear *int        `json:"graduationYear"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful registration or login:
// {"success": true, "token": "...", "user": {...}}
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// MeResponse wraps the current user record
type MeResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

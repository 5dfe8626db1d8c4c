package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
	"github.com/alumniconnect/backend/internal/pkg/validation"
)

// AuthService handles registration, login and the current-user lookup
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account and issues a token for it. The role
// defaults to student; alumni start unapproved and cannot log in until an
// admin approves them, but the registration itself succeeds and returns a
// token. Emails are stored lowercased and trimmed so the unique index
// catches case variants of the same address.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.IsValid() {
		return nil, "", apperrors.NewValidationError("role must be one of: student, alumni, admin")
	}

	if !validation.ValidName(req.Name) {
		return nil, "", apperrors.NewValidationError("name must be between 2 and 100 characters")
	}
	email := validation.NormalizeEmail(req.Email)
	if !validation.ValidEmail(email) {
		return nil, "", apperrors.NewValidationError("email is not a valid address")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, "", apperrors.NewValidationError("password must be at least 8 characters")
	}
	if req.GraduationYear != nil && !validation.ValidGraduationYear(*req.GraduationYear) {
		return nil, "", apperrors.NewValidationError("graduationYear is out of range")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, "", err
	}

	user := &models.User{
		Name:           req.Name,
		Email:          email,
		Password:       hash,
		Role:           role,
		CollegeID:      req.CollegeID,
		GraduationYear: req.GraduationYear,
		IsApproved:     role != models.RoleAlumni,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		logger.Error().Err(err).Str("userID", user.ID.Hex()).Msg("Failed to issue token")
		return nil, "", err
	}

	logger.Info().Str("userID", user.ID.Hex()).Str("role", string(user.Role)).Msg("User registered")
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown emails and wrong
// passwords produce the same error so the endpoint does not leak which
// accounts exist. Unapproved alumni are rejected after the password check.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if user.Role == models.RoleAlumni && !user.IsApproved {
		return nil, "", apperrors.ErrPendingApproval
	}

	token, err := s.jwtService.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		logger.Error().Err(err).Str("userID", user.ID.Hex()).Msg("Failed to issue token")
		return nil, "", err
	}

	logger.Info().Str("userID", user.ID.Hex()).Msg("User logged in")
	return user, token, nil
}

// Me returns the live user record behind the authenticated identity
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

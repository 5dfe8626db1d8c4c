package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// UserService handles user listing and alumni approval
type UserService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsers returns every user, newest first
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// ApproveAlumni marks an alumni account approved. Only alumni accounts can
// be approved; students and admins never sit in the approval queue.
func (s *UserService) ApproveAlumni(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != models.RoleAlumni {
		return nil, apperrors.NewValidationError("User is not an alumni")
	}

	updated, err := s.userRepo.SetApproved(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("userID", userID).Msg("Alumni account approved")
	return updated, nil
}

// ListApprovedAlumni returns approved alumni accounts for students browsing
// the network.
func (s *UserService) ListApprovedAlumni(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindApprovedAlumni(ctx)
}

package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	appauth "github.com/alumniconnect/backend/internal/app/auth"
	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// MentorshipService handles alumni mentorship offers
type MentorshipService struct {
	mentorshipRepo repositories.IMentorshipRepository
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(mentorshipRepo repositories.IMentorshipRepository) *MentorshipService {
	return &MentorshipService{
		mentorshipRepo: mentorshipRepo,
	}
}

// ListPosts returns every mentorship post, newest first
func (s *MentorshipService) ListPosts(ctx context.Context) ([]*models.MentorshipPost, error) {
	return s.mentorshipRepo.List(ctx)
}

// CreatePost creates a mentorship offer owned by the caller. The alumni-only
// route gate carries the authorization.
func (s *MentorshipService) CreatePost(ctx context.Context, identity appauth.Identity, req *dto.CreateMentorshipPostRequest) (*models.MentorshipPost, error) {
	creatorID, err := bson.ObjectIDFromHex(identity.ID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	post := &models.MentorshipPost{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   creatorID,
	}

	if err := s.mentorshipRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	logger.Info().Str("postID", post.ID.Hex()).Str("userID", identity.ID).Msg("Mentorship post created")
	return post, nil
}

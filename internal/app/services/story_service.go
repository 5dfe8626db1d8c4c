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

// StoryService handles alumni success stories
type StoryService struct {
	storyRepo repositories.IStoryRepository
}

// NewStoryService creates a new StoryService
func NewStoryService(storyRepo repositories.IStoryRepository) *StoryService {
	return &StoryService{
		storyRepo: storyRepo,
	}
}

// ListStories returns every story, featured first then newest
func (s *StoryService) ListStories(ctx context.Context) ([]*models.SuccessStory, error) {
	return s.storyRepo.List(ctx)
}

// GetStory returns one story by id
func (s *StoryService) GetStory(ctx context.Context, storyID string) (*models.SuccessStory, error) {
	story, err := s.storyRepo.FindByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Story not found")
		}
		return nil, err
	}
	return story, nil
}

// CreateStory creates a story authored by the caller
func (s *StoryService) CreateStory(ctx context.Context, identity appauth.Identity, req *dto.CreateStoryRequest) (*models.SuccessStory, error) {
	authorID, err := bson.ObjectIDFromHex(identity.ID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	story := &models.SuccessStory{
		Author:         authorID,
		Title:          req.Title,
		Summary:        req.Summary,
		Content:        req.Content,
		Role:           req.Role,
		Company:        req.Company,
		GraduationYear: req.GraduationYear,
		Tags:           req.Tags,
		Featured:       req.Featured,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}

	logger.Info().Str("storyID", story.ID.Hex()).Str("userID", identity.ID).Msg("Success story created")
	return story, nil
}

// UpdateStory applies a partial update to a story the caller authored.
// Admins may update any story.
func (s *StoryService) UpdateStory(ctx context.Context, identity appauth.Identity, storyID string, req *dto.UpdateStoryRequest) (*models.SuccessStory, error) {
	story, err := s.GetStory(ctx, storyID)
	if err != nil {
		return nil, err
	}

	if !appauth.CanModify(identity, story.Author.Hex()) {
		return nil, apperrors.NewForbiddenError("Not authorized to modify this story")
	}

	if req.Title != nil {
		story.Title = *req.Title
	}
	if req.Summary != nil {
		story.Summary = *req.Summary
	}
	if req.Content != nil {
		story.Content = *req.Content
	}
	if req.Role != nil {
		story.Role = *req.Role
	}
	if req.Company != nil {
		story.Company = *req.Company
	}
	if req.GraduationYear != nil {
		story.GraduationYear = req.GraduationYear
	}
	if req.Tags != nil {
		story.Tags = req.Tags
	}
	if req.Featured != nil {
		story.Featured = *req.Featured
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

// DeleteStory removes a story the caller authored. Admins may delete any
// story.
func (s *StoryService) DeleteStory(ctx context.Context, identity appauth.Identity, storyID string) error {
	story, err := s.GetStory(ctx, storyID)
	if err != nil {
		return err
	}

	if !appauth.CanModify(identity, story.Author.Hex()) {
		return apperrors.NewForbiddenError("Not authorized to delete this story")
	}

	if err := s.storyRepo.Delete(ctx, storyID); err != nil {
		return err
	}

	logger.Info().Str("storyID", storyID).Str("userID", identity.ID).Msg("Success story deleted")
	return nil
}

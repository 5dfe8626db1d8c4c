package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
	"github.com/alumniconnect/backend/internal/pkg/validation"
)

// ProfileService handles extended profiles and the alumni directory
type ProfileService struct {
	profileRepo repositories.IProfileRepository
	userRepo    repositories.IUserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repositories.IProfileRepository, userRepo repositories.IUserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetMyProfile returns the caller's profile together with their account,
// creating the profile on first read so the client never has to handle a
// missing one. The lazily created profile inherits the graduation year
// given at registration.
func (s *ProfileService) GetMyProfile(ctx context.Context, userID string) (*models.Profile, *models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.profileRepo.FindByUser(ctx, userID)
	if err == nil {
		return profile, user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, err
	}

	profile = &models.Profile{User: user.ID, GraduationYear: user.GraduationYear}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, nil, err
	}

	logger.Debug().Str("userID", userID).Msg("Created profile on first read")
	return profile, user, nil
}

// UpdateMyProfile applies a partial update to the caller's profile,
// creating it if necessary. Only the allow-listed profile fields are
// written; identity fields never pass through here.
func (s *ProfileService) UpdateMyProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if req.GraduationYear != nil && !validation.ValidGraduationYear(*req.GraduationYear) {
		return nil, apperrors.NewValidationError("graduationYear is out of range")
	}

	update := bson.M{}
	if req.Headline != nil {
		update["headline"] = *req.Headline
	}
	if req.Bio != nil {
		update["bio"] = *req.Bio
	}
	if req.Department != nil {
		update["department"] = *req.Department
	}
	if req.GraduationYear != nil {
		update["graduationYear"] = *req.GraduationYear
	}
	if req.CurrentRole != nil {
		update["currentRole"] = *req.CurrentRole
	}
	if req.Company != nil {
		update["company"] = *req.Company
	}
	if req.Location != nil {
		update["location"] = *req.Location
	}
	if req.Phone != nil {
		update["phone"] = *req.Phone
	}
	if req.Socials != nil {
		update["socials"] = req.Socials
	}
	if req.Skills != nil {
		update["skills"] = req.Skills
	}
	if req.Certifications != nil {
		update["certifications"] = req.Certifications
	}
	if req.Experience != nil {
		update["experience"] = req.Experience
	}
	if req.Interests != nil {
		update["interests"] = req.Interests
	}

	return s.profileRepo.Upsert(ctx, userID, update)
}

// GetProfileByUser returns another user's profile together with its owner.
// Used by admins inspecting accounts. Only an unknown user id is an error;
// a user who never touched their profile comes back with a nil profile.
func (s *ProfileService) GetProfileByUser(ctx context.Context, userID string) (*models.Profile, *models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, user, nil
		}
		return nil, nil, err
	}

	return profile, user, nil
}

// Directory returns every approved alumni joined with their profile. Users
// who never touched their profile appear with a nil profile.
func (s *ProfileService) Directory(ctx context.Context) ([]*dto.DirectoryRecord, error) {
	alumni, err := s.userRepo.FindApprovedAlumni(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]bson.ObjectID, 0, len(alumni))
	for _, user := range alumni {
		userIDs = append(userIDs, user.ID)
	}

	profiles, err := s.profileRepo.FindByUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	byUser := make(map[bson.ObjectID]*models.Profile, len(profiles))
	for _, profile := range profiles {
		byUser[profile.User] = profile
	}

	records := make([]*dto.DirectoryRecord, 0, len(alumni))
	for _, user := range alumni {
		records = append(records, &dto.DirectoryRecord{
			User:    user,
			Profile: byUser[user.ID],
		})
	}

	return records, nil
}

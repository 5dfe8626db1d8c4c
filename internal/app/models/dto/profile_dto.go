package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// UpdateProfileRequest carries a partial profile update; nil fields are
// untouched. Identity fields (email, role) are never updatable here.
type UpdateProfileRequest struct {
	Headline       *string                `json:"headline"`
	Bio            *string                `json:"bio"`
	Department     *string                `json:"department"`
	GraduationYear *int                   `json:"graduationYear"`
	CurrentRole    *string                `json:"currentRole"`
	Company        *string                `json:"company"`
	Location       *string                `json:"location"`
	Phone          *string                `json:"phone"`
	Socials        *models.Socials        `json:"socials"`
	Skills         []models.Skill         `json:"skills"`
	Certifications []models.Certification `json:"certifications"`
	Experience     []models.Experience    `json:"experience"`
	Interests      []string               `json:"interests"`
}

// ProfileResponse wraps a profile together with its owning user
type ProfileResponse struct {
	Success bool            `json:"success"`
	Profile *models.Profile `json:"profile"`
	User    *models.User    `json:"user,omitempty"`
}

// DirectoryRecord pairs an approved alumni user with their profile
type DirectoryRecord struct {
	User    *models.User    `json:"user"`
	Profile *models.Profile `json:"profile"`
}

// DirectoryResponse wraps the alumni directory listing
type DirectoryResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Records []*DirectoryRecord `json:"records"`
}

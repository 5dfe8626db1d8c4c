// Package services contains the business logic between the controllers and
// the repositories.
package services

import (
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/auth"
)

// Services bundles every service for dependency wiring
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	ProfileService    *ProfileService
	JobService        *JobService
	EventService      *EventService
	MentorshipService *MentorshipService
	StoryService      *StoryService
	AdminService      *AdminService
}

// NewServices creates all services backed by the given repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService),
		UserService:       NewUserService(repos.UserRepository),
		ProfileService:    NewProfileService(repos.ProfileRepository, repos.UserRepository),
		JobService:        NewJobService(repos.JobRepository),
		EventService:      NewEventService(repos.EventRepository),
		MentorshipService: NewMentorshipService(repos.MentorshipRepository),
		StoryService:      NewStoryService(repos.StoryRepository),
		AdminService: NewAdminService(
			repos.UserRepository,
			repos.JobRepository,
			repos.EventRepository,
			repos.ProfileRepository,
		),
	}
}

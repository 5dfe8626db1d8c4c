package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
)

// AlumniByCompanyLimit caps the dashboard's top-companies bucket list
const AlumniByCompanyLimit = 10

// AdminService composes the analytics dashboard
type AdminService struct {
	userRepo    repositories.IUserRepository
	jobRepo     repositories.IJobRepository
	eventRepo   repositories.IEventRepository
	profileRepo repositories.IProfileRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	jobRepo repositories.IJobRepository,
	eventRepo repositories.IEventRepository,
	profileRepo repositories.IProfileRepository,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		eventRepo:   eventRepo,
		profileRepo: profileRepo,
	}
}

// DashboardStats gathers the counts behind the admin dashboard. The counts
// come from independent queries, so numbers may be momentarily inconsistent
// with each other under concurrent writes.
func (s *AdminService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	students, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	alumni, err := s.userRepo.CountByRole(ctx, models.RoleAlumni)
	if err != nil {
		return nil, err
	}

	pendingAlumni, err := s.userRepo.CountPendingAlumni(ctx)
	if err != nil {
		return nil, err
	}

	eventStats, err := s.eventRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	jobStats, err := s.jobRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byCompany, err := s.profileRepo.AlumniByCompany(ctx, AlumniByCompanyLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		Students:        students,
		Alumni:          alumni,
		PendingAlumni:   pendingAlumni,
		Events:          *eventStats,
		Jobs:            *jobStats,
		AlumniByCompany: byCompany,
	}, nil
}

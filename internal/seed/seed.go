// Package seed creates the default records the application needs on a
// fresh database.
package seed

import (
	"context"
	"errors"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
	"github.com/alumniconnect/backend/internal/pkg/validation"
)

// EnsureAdmin creates the default admin account if no account exists under
// the configured email. A blank password skips seeding entirely so a
// production deployment never ships a default credential.
func EnsureAdmin(ctx context.Context, userRepo repositories.IUserRepository, email, password string) error {
	if email == "" || password == "" {
		logger.Debug().Msg("Admin seed skipped, no credentials configured")
		return nil
	}

	email = validation.NormalizeEmail(email)
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:       "Administrator",
		Email:      email,
		Password:   hash,
		Role:       models.RoleAdmin,
		CollegeID:  "ADMIN",
		IsApproved: true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", email).Msg("Seeded default admin account")
	return nil
}

// Package middleware contains the gin middleware chain: authentication,
// role gating, CORS, request logging, metrics, and the central error
// renderer.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

// Canonical client-facing messages for bare sentinels
const (
	msgAuthRequired    = "Authentication required"
	msgInvalidToken    = "Invalid or expired token"
	msgUserNotFound    = "User not found"
	msgCredentials     = "Invalid credentials"
	msgForbidden       = "Forbidden"
	msgPendingApproval = "Alumni account pending approval"
	msgEmailTaken      = "Email already registered"
	msgNotFound        = "Resource not found"
	msgConflict        = "Conflict"
	msgValidation      = "Invalid request"
	msgInternal        = "Internal Server Error"
)

// HandleAPIError maps a service or repository error onto the shared failure
// body. Wrapped messages win over the sentinel defaults; anything
// unrecognized becomes a 500 with the details kept server-side.
func HandleAPIError(c *gin.Context, err error) {
	status, message := classify(err)

	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

func classify(err error) (int, string) {
	var appErr *apperrors.Error
	custom := ""
	if errors.As(err, &appErr) && appErr.Message != "" {
		custom = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrAuthenticationRequired):
		return http.StatusUnauthorized, orDefault(custom, msgAuthRequired)
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, orDefault(custom, msgInvalidToken)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, orDefault(custom, msgCredentials)
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound, orDefault(custom, msgUserNotFound)
	case errors.Is(err, apperrors.ErrPendingApproval):
		return http.StatusForbidden, orDefault(custom, msgPendingApproval)
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, orDefault(custom, msgForbidden)
	case errors.Is(err, apperrors.ErrEmailTaken):
		return http.StatusConflict, orDefault(custom, msgEmailTaken)
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, orDefault(custom, msgConflict)
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, orDefault(custom, msgNotFound)
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, orDefault(custom, msgValidation)
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

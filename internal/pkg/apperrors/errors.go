package apperrors

import "errors"

// Authentication errors
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenInvalid           = errors.New("invalid token")
)

// Authorization errors
var (
	ErrForbidden       = errors.New("forbidden")
	ErrPendingApproval = errors.New("alumni account pending approval")
)

// Resource errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict")
)

// Validation errors
var (
	ErrValidation = errors.New("validation failed")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Error carries a base sentinel plus a user-facing message. The sentinel
// drives the HTTP status mapping; the message is what the client sees.
type Error struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the base sentinel for errors.Is checks
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps ErrNotFound with a message
func NewNotFoundError(message string) error {
	return &Error{Err: ErrNotFound, Message: message}
}

// NewConflictError wraps ErrConflict with a message
func NewConflictError(message string) error {
	return &Error{Err: ErrConflict, Message: message}
}

// NewForbiddenError wraps ErrForbidden with a message
func NewForbiddenError(message string) error {
	return &Error{Err: ErrForbidden, Message: message}
}

// NewValidationError wraps ErrValidation with a message
func NewValidationError(message string) error {
	return &Error{Err: ErrValidation, Message: message}
}

package apperrors

import "errors"

// Common errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
)

// Department errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department already exists")
)

// Employee errors
var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrDepartmentForEmployee = errors.New("department for employee not found")
)

// Task errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Team errors
var (
	ErrTeamNotFound = errors.New("team not found")
)

// Review workflow errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrInvalidReviewStatus  = errors.New("invalid review status")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a field-specific message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError wraps a not-found sentinel with a message
func NewNotFoundError(sentinel error, message string) error {
	return &CustomError{
		Err:     sentinel,
		Message: message,
	}
}

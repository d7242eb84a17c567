package errors

import (
	"net/http"

	"webshop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not-found errors, one per entity so handlers can surface a
	// precise message while clients key off the shared code.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"User doesn't exist!",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"Category doesn't exist!",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"Product doesn't exist!",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"Order doesn't exist!",
		"",
	)

	ErrFeedbackNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"Feedback doesn't exist!",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"Profile doesn't exist!",
		"",
	)

	// Natural-key conflicts.
	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_ALREADY_EXISTS",
		"The category already exists!",
		"",
	)

	ErrProductAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_EXISTS",
		"The product already exists!",
		"",
	)

	ErrFeedbackAlreadyExists = NewBaseError(
		http.StatusConflict,
		"FEEDBACK_ALREADY_EXISTS",
		"The feedback already exists!",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"The profile already exists!",
		"",
	)

	// Missing referenced entities on Add. These are conflicts, not
	// not-found errors: the request itself is well-formed but its
	// references do not hold.
	ErrUserDoesntExist = NewBaseError(
		http.StatusConflict,
		"USER_DOESNT_EXIST",
		"The user doesn't exist!",
		"",
	)

	ErrProductDoesntExist = NewBaseError(
		http.StatusConflict,
		"PRODUCT_DOESNT_EXIST",
		"The product doesn't exist!",
		"",
	)

	ErrCategoryDoesntExist = NewBaseError(
		http.StatusConflict,
		"CATEGORY_DOESNT_EXIST",
		"The category doesn't exist!",
		"",
	)

	// Permission errors.
	ErrCannotAdd = NewBaseError(
		http.StatusForbidden,
		"CANNOT_ADD",
		"Only the admin can add entities!",
		"",
	)

	ErrCannotUpdate = NewBaseError(
		http.StatusForbidden,
		"CANNOT_UPDATE",
		"You are not allowed to update this entity!",
		"",
	)

	ErrCannotDelete = NewBaseError(
		http.StatusForbidden,
		"CANNOT_DELETE",
		"Only the admin can delete entities!",
		"",
	)

	// Transport boundary errors.
	ErrUnauthenticated = NewBaseError(
		http.StatusForbidden,
		"UNAUTHENTICATED",
		"Missing or invalid authorization token!",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed!",
		"",
	)

	// General errors.
	ErrTechnical = NewBaseError(
		http.StatusInternalServerError,
		"TECHNICAL_ERROR",
		"An unknown error occurred, contact the technical support!",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "TECHNICAL_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "An unknown error occurred, contact the technical support!"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

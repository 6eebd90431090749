package apperrors

import "errors"

// Error kinds. Every error returned by the stores and services unwraps to
// one of these, which is what the HTTP error handler switches on.
var (
	// ErrNotFound is returned when an identifier does not resolve to a record.
	ErrNotFound = errors.New("resource not found")
	// ErrValidationFailed is returned for missing required fields and
	// uniqueness violations (email, course code).
	ErrValidationFailed = errors.New("validation failed")
	// ErrStoreFailure wraps connectivity/query failures of the backing store.
	ErrStoreFailure = errors.New("store failure")
)

// Entity errors. The messages are part of the HTTP contract and end up
// verbatim in the {message} response body.
var (
	ErrStudentNotFound         = NewNotFoundError("Student not found")
	ErrFacultyNotFound         = NewNotFoundError("Faculty not found")
	ErrCourseNotFound          = NewNotFoundError("Course not found")
	ErrStudentOrCourseNotFound = NewNotFoundError("Student or Course not found")
	ErrFacultyOrCourseNotFound = NewNotFoundError("Faculty or Course not found")

	ErrMissingFields    = NewValidationError("Please add all fields")
	ErrEmailExists      = NewValidationError("Email already exists")
	ErrCourseCodeExists = NewValidationError("Course code already exists")
)

// CustomError carries a user-facing message on top of an error kind.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap so errors.Is can match the kind.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates an error that maps to HTTP 404.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewValidationError creates an error that maps to HTTP 400.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewStoreError wraps an underlying store failure; it maps to HTTP 500.
func NewStoreError(err error, message string) error {
	return &CustomError{Err: errors.Join(ErrStoreFailure, err), Message: message}
}

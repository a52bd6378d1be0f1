package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the admin password or token is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSubmissionNotFound is returned when a contact submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrMemberNotFound is returned when a team member is not found.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrPhotoRequired is returned when a team member is created without a photo.
	ErrPhotoRequired = errors.New("photo is required")
	// ErrInvalidEventStatus is returned when an event status is outside the closed set.
	ErrInvalidEventStatus = errors.New("status must be \"upcoming\" or \"past\"")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors collapse to
// a generic 500 so no internal detail leaks to the client.
func MapErrorToHTTP(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrSubmissionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SUBMISSION_NOT_FOUND")
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrMemberNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBER_NOT_FOUND")
	case errors.Is(err, ErrPhotoRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PHOTO_REQUIRED")
	case errors.Is(err, ErrInvalidEventStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

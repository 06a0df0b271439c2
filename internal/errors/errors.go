package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when an identifier does not resolve to a user.
	ErrUserNotFound = errors.New("user not found")
	// ErrRecordNotFound is returned when a publication or experience id does not resolve.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateIdentifier is returned when registering an existing username.
	ErrDuplicateIdentifier = errors.New("username already exists")
	// ErrDuplicateFeedback is returned when a student rates the same faculty twice in a semester.
	ErrDuplicateFeedback = errors.New("feedback already submitted for this faculty this semester")
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned when username, password or role do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, expired or revoked.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrPermissionDenied is returned when the session role or identity may not perform an operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidRole is returned for a role outside faculty, evaluator and student.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidSemester is returned for a semester token not shaped like YEAR-1 or YEAR-2.
	ErrInvalidSemester = errors.New("invalid semester")
	// ErrStoreUnavailable wraps store failures that are not a normal outcome.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// userMessages holds the text shown to end users for each domain error,
// checked in order so the first matching sentinel wins.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrUserNotFound, "User not found."},
	{ErrRecordNotFound, "Record not found."},
	{ErrDuplicateIdentifier, "Username already exists. Please choose another."},
	{ErrDuplicateFeedback, "You have already submitted feedback for this faculty this semester."},
	{ErrValidation, "All fields are required."},
	{ErrInvalidRole, "Role must be faculty, evaluator or student."},
	{ErrInvalidSemester, "Semester must look like 2024-1 or 2024-2."},
	{ErrInvalidCredentials, "Invalid credentials. Please try again."},
	{ErrInvalidRefreshToken, "Your session has expired. Please login again."},
	{ErrPermissionDenied, "You are not allowed to perform this action."},
	{ErrStoreUnavailable, "The service is temporarily unavailable. Please try again later."},
}

// Message returns the user-facing text for err, falling back to a generic message.
func Message(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "Something went wrong. Please try again."
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	msg := Message(err)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, msg, "USER_NOT_FOUND")
	case errors.Is(err, ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, msg, "RECORD_NOT_FOUND")
	case errors.Is(err, ErrDuplicateIdentifier):
		return NewHTTPError(http.StatusConflict, msg, "DUPLICATE_IDENTIFIER")
	case errors.Is(err, ErrDuplicateFeedback):
		return NewHTTPError(http.StatusConflict, msg, "DUPLICATE_FEEDBACK")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, msg, "VALIDATION_FAILURE")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, msg, "INVALID_ROLE")
	case errors.Is(err, ErrInvalidSemester):
		return NewHTTPError(http.StatusBadRequest, msg, "INVALID_SEMESTER")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, msg, "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, msg, "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrPermissionDenied):
		return NewHTTPError(http.StatusForbidden, msg, "PERMISSION_DENIED")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, msg, "STORE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, msg, "INTERNAL_ERROR")
	}
}

package errors

import (
	"errors"
	"net/http"
)

// Error strings double as API messages, so they keep the wire wording.
var (
	// ErrInvalidCredentials is returned on login when the username is unknown
	// or the password is wrong. The two cases are deliberately
	// indistinguishable to prevent username enumeration.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("Username already exists")
	// ErrPlayerExists is returned when creating a player whose name is taken.
	ErrPlayerExists = errors.New("Player already exists")
	// ErrSelfDelete is returned when a user tries to delete their own account.
	ErrSelfDelete = errors.New("Cannot delete your own account")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unique-constraint
// conflicts and self-delete attempts are 400s, bad credentials 401; anything
// unrecognized is an internal error.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, ErrUsernameTaken.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrPlayerExists):
		return NewHTTPError(http.StatusBadRequest, ErrPlayerExists.Error(), "PLAYER_EXISTS")
	case errors.Is(err, ErrSelfDelete):
		return NewHTTPError(http.StatusBadRequest, ErrSelfDelete.Error(), "SELF_DELETE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

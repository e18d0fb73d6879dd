package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The same error covers an unknown email and a wrong password so the
	// response does not reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering or updating to an email
	// that already belongs to another account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when the target account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRole is returned when a request names a role outside the
	// known set.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUnsupportedMedia is returned when an upload is not a jpg, jpeg,
	// or png image.
	ErrUnsupportedMedia = errors.New("images only (jpg, jpeg, png)")
	// ErrUploadFailed is returned when storing the file or binding it to
	// the account fails.
	ErrUploadFailed = errors.New("upload failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrUnsupportedMedia):
		return NewHTTPError(http.StatusUnsupportedMediaType, err.Error(), "UNSUPPORTED_MEDIA_TYPE")
	case errors.Is(err, ErrUploadFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "UPLOAD_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

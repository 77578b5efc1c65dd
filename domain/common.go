package domain

import (
	"errors"
	"net/http"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrValidation     = errors.New("invalid request body")
)

// DuplicateCode is the wire marker clients rely on to tell a uniqueness
// violation apart from a generic failure.
const DuplicateCode = "23505"

// StatusCode maps a sentinel error onto the HTTP status handlers respond with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrRecipeNotFound),
		errors.Is(err, ErrLikeNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrBookEntryNotFound),
		errors.Is(err, ErrGeneratedRecipeNotFound),
		errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, ErrEmailAlreadyRegistered),
		errors.Is(err, ErrAlreadyInBook),
		errors.Is(err, ErrAlreadyShared):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrGoogleTokenInvalid),
		errors.Is(err, ErrTokenNotFound),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAIServiceFailed):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// ErrorCode returns the wire code attached to an error response, empty for
// errors that carry no code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEmailAlreadyRegistered),
		errors.Is(err, ErrAlreadyInBook),
		errors.Is(err, ErrAlreadyShared):
		return DuplicateCode
	default:
		return ""
	}
}

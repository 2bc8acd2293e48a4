package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/astralfront/supremacy/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeClientIDRequired   = "CLIENT_ID_REQUIRED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeViewNotFound       = "VIEW_NOT_FOUND"
	CodeInvalidFaction     = "INVALID_FACTION"
	CodeInvalidGalaxySize  = "INVALID_GALAXY_SIZE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUserExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, model.ErrTokenInvalid):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}
	case errors.Is(err, model.ErrScopeDenied):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Insufficient scope"}}
	case errors.Is(err, model.ErrNotGameMember):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "No faction in this game"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrViewNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeViewNotFound, "No view for faction"}}
	case errors.Is(err, model.ErrInvalidFaction):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidFaction, "Faction must be Empire or Rebellion"}}
	case errors.Is(err, model.ErrInvalidGalaxySize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGalaxySize, "Galaxy size must be Small, Medium or Large"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewClientIDRequiredError creates the error for a missing X-Client-ID header
func NewClientIDRequiredError() error {
	return &httpError{http.StatusBadRequest, APIError{CodeClientIDRequired, "X-Client-ID header is required"}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

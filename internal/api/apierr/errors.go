package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/demodevopss/RockPaperScissorsLizardSpock/internal/model"
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
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeUnknownChallenger     = "UNKNOWN_CHALLENGER"
	CodeInvalidPick           = "INVALID_PICK"
	CodeChallengerUnavailable = "CHALLENGER_UNAVAILABLE"
	CodeInternalError         = "INTERNAL_ERROR"
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

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Domain errors carry caller-facing messages, so they are passed through
	switch {
	case errors.Is(err, model.ErrUnknownChallenger):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownChallenger, err.Error()}}
	case errors.Is(err, model.ErrInvalidPick):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPick, err.Error()}}
	case errors.Is(err, model.ErrChallengerUnavailable):
		return &httpError{http.StatusBadGateway, APIError{CodeChallengerUnavailable, "Challenger is unavailable"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

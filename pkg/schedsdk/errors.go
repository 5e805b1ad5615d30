package schedsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/huddle/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeValidationFailed    = "validation_failed"
	ErrorCodePersistenceFailed   = "persistence_failed"
	ErrorCodeUnknownReference    = "unknown_reference"
	ErrorCodeNotFound            = "not_found"
	ErrorCodePersonNotRegistered = "person_not_registered"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeInsufficientScope   = "insufficient_scope"
	ErrorCodeServerError         = "server_error"
)

// APIError is an error response from the scheduler. Handlers write it and
// the Client returns it, so callers can switch on Code.
type APIError struct {
	StatusCode  int      `json:"-"`
	Code        string   `json:"error"`
	Description string   `json:"error_description"`
	Messages    []string `json:"messages,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as the response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Messages:         e.Messages,
	})
}

// AsAPIError unwraps err to an *APIError when there is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request body is malformed",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	// ErrPersonNotRegistered is returned when the token subject has no
	// person record in any home.
	ErrPersonNotRegistered = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodePersonNotRegistered,
		Description: "no household member matches this account",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid, expired or revoked",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewValidationError carries the form messages of a rejected draft.
func NewValidationError(messages []string) *APIError {
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidationFailed,
		Description: "the event draft is incomplete",
		Messages:    messages,
	}
}

// NewPersistenceError is returned when the event could not be saved.
func NewPersistenceError() *APIError {
	return &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodePersistenceFailed,
		Description: "the event could not be saved, please try again",
	}
}

// NewUnknownReferenceError is returned when the room or an attendee is not
// part of the organizer's home.
func NewUnknownReferenceError(description string) *APIError {
	return &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Code:        ErrorCodeUnknownReference,
		Description: description,
	}
}

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Messages:    errResp.Messages,
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeInvalidToken, Description: string(body)}
	case http.StatusForbidden:
		return &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeInsufficientScope, Description: string(body)}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

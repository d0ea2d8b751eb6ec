package api

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel errors classifying every failed call. The client never recovers
// from any of them; it forwards the classification and the backend's own
// message to the caller. Match with errors.Is.
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnknown      = errors.New("unexpected server error")
)

// APIError is a rejected request. Message is the backend's response body,
// verbatim. The backend writes end-user-safe text and the UI renders it
// unmodified.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.kind }

func classify(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return ErrUnknown
	}
}

// Message extracts the user-facing text from err: the backend's own words
// for an *APIError, err.Error() otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Message: errorMessage(body), kind: classify(status)}
}

// errorMessage pulls the human-readable text out of an error body. The
// backend usually answers with plain text; some builds wrap it in
// {"message": "..."} or send a bare JSON string, so all three shapes are
// accepted.
func errorMessage(body []byte) string {
	var wrapped struct {
		Message string `json:"message"`
	}
	if err := jsonCodec.Unmarshal(body, &wrapped); err == nil && wrapped.Message != "" {
		return wrapped.Message
	}
	var plain string
	if err := jsonCodec.Unmarshal(body, &plain); err == nil {
		return plain
	}
	return strings.TrimSpace(string(body))
}

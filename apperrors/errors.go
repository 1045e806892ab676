// Package apperrors defines the failure taxonomy shared by the HTTP client and
// the domain services.
package apperrors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrServer             = errors.New("server error")
	ErrNetwork            = errors.New("network error")
	ErrUnexpectedStatus   = errors.New("unexpected status")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

// HTTPError is a response that was received and classified as a failure.
type HTTPError struct {
	Kind    error
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Kind
}

// NetworkError means no response was obtained at all.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Cause.Error()
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Cause}
}

// KindForStatus maps a failing status code to its taxonomy kind.
func KindForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return ErrValidation
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrUnexpectedStatus
	}
}

func Classify(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{Kind: KindForStatus(status), Status: status, Message: message}
}

// Reclassify keeps the status and message of an HTTPError but replaces its kind.
// Errors that are not HTTPErrors are returned unchanged.
func Reclassify(err error, kind error) error {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}
	return &HTTPError{Kind: kind, Status: httpErr.Status, Message: httpErr.Message}
}

// Message returns a message fit for showing to a user.
func Message(err error) string {
	var httpErr *HTTPError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &httpErr):
		return httpErr.Message
	case errors.Is(err, ErrNetwork):
		return "Network error. Please check your connection."
	default:
		return "An error occurred. Please try again."
	}
}

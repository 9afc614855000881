package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"time"
)

// ErrGenerationPending is returned when a generation is requested while another is in flight.
var ErrGenerationPending = errors.New("a resume generation request is already pending")

// ErrGenerationDiscarded is returned when the session was reset while the request ran.
var ErrGenerationDiscarded = errors.New("resume generation was discarded by a reset")

const noResponseMessage = "No response received from server. Please check if the backend is running."

// ErrorKind classifies a failed call to the rendering service
type ErrorKind string

// Error kinds, also used as metric outcome labels
const (
	KindConnectionRefused ErrorKind = "connection_refused"
	KindServerError       ErrorKind = "server_error"
	KindNoResponse        ErrorKind = "no_response"
	KindTimeout           ErrorKind = "timeout"
	KindUnknown           ErrorKind = "unknown"
)

// Error is a classified rendering service failure. Message is meant for the user.
type Error struct {
	Kind    ErrorKind
	Status  int // HTTP status for KindServerError
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// newServerError builds a KindServerError from a non-2xx response, taking the
// message from the body's "error" field when there is one.
func newServerError(status int, body []byte) *Error {
	detail := "Unknown error"
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		detail = payload.Error
	}
	return &Error{
		Kind:    KindServerError,
		Status:  status,
		Message: fmt.Sprintf("Server error: %d - %s", status, detail),
	}
}

// classifyTransportError maps an error from sending a request or reading its
// response onto an error kind.
func classifyTransportError(err error, baseURL string, timeout time.Duration) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if isTimeout(err) {
		return &Error{
			Kind:    KindTimeout,
			Message: fmt.Sprintf("Request timed out after %s. Please try again.", timeout),
			Cause:   err,
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return &Error{
			Kind:    KindConnectionRefused,
			Message: fmt.Sprintf("Could not connect to the backend server. Please ensure it is running at %s", baseURL),
			Cause:   err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && !errors.Is(err, context.Canceled) {
		return &Error{
			Kind:    KindNoResponse,
			Message: noResponseMessage,
			Cause:   err,
		}
	}

	return unknownError(err)
}

func unknownError(err error) *Error {
	return &Error{
		Kind:    KindUnknown,
		Message: fmt.Sprintf("Error: %v", err),
		Cause:   err,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ArtifactError represents a failure storing or materializing an artifact
type ArtifactError struct {
	Message string
	Cause   error
}

func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("artifact error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("artifact error: %s", e.Message)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}

// SampleDataFailureMessage is shown when the sample resume cannot be loaded.
const SampleDataFailureMessage = "Failed to load sample data. Please ensure the backend server is running."

// SampleDataError reports a failed sample data load. Cause holds the classified failure.
type SampleDataError struct {
	Cause *Error
}

func (e *SampleDataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s)", SampleDataFailureMessage, e.Cause.Message)
	}
	return SampleDataFailureMessage
}

func (e *SampleDataError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

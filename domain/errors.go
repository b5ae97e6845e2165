// Package domain contains the Asaas entities, filters and errors.
// Domain errors describe what went wrong with an API call in terms callers can
// act on. They carry no net/http types, so any transport can produce them.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrTransport indicates no HTTP response was obtained.
	ErrTransport = errors.New("transport failure")

	// ErrAPI indicates the upstream answered with a non-success status.
	ErrAPI = errors.New("api error")

	// ErrNotFound indicates the requested resource does not exist upstream.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a call was rejected before reaching the network.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecode indicates a successful response carried a body that could not be decoded.
	ErrDecode = errors.New("decode failure")
)

// ErrorDetail is one entry of the upstream "errors" array.
type ErrorDetail struct {
	Code        string
	Description string
}

// TransportError wraps a network or connection failure that happened before
// any response was received. It is never retried by this library.
type TransportError struct {
	Resource  string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport failure: %v", e.Resource, e.Operation, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// NewTransportError creates a transport error with context.
func NewTransportError(resource, operation string, err error) error {
	return &TransportError{Resource: resource, Operation: operation, Err: err}
}

// APIError is returned when the upstream answered with a 4xx or 5xx status.
type APIError struct {
	Resource   string
	Operation  string
	StatusCode int
	Errors     []ErrorDetail

	// Body holds the raw payload when it did not match the documented error shape.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message()
	if msg == "" {
		return fmt.Sprintf("%s %s: upstream returned status %d", e.Resource, e.Operation, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: upstream returned status %d: %s", e.Resource, e.Operation, e.StatusCode, msg)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *APIError) Unwrap() error {
	return ErrAPI
}

// Message joins the upstream error descriptions.
func (e *APIError) Message() string {
	if len(e.Errors) == 0 {
		return strings.TrimSpace(e.Body)
	}

	parts := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		switch {
		case d.Code != "" && d.Description != "":
			parts = append(parts, d.Code+": "+d.Description)
		case d.Description != "":
			parts = append(parts, d.Description)
		default:
			parts = append(parts, d.Code)
		}
	}

	return strings.Join(parts, "; ")
}

// HasCode reports whether the upstream returned the given error code.
func (e *APIError) HasCode(code string) bool {
	for _, d := range e.Errors {
		if d.Code == code {
			return true
		}
	}

	return false
}

// NotFoundError is the APIError specialization for missing resources.
type NotFoundError struct {
	Resource string
	ID       string
	API      *APIError
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Resource, e.ID)
	}

	return e.Resource + " not found"
}

// Unwrap returns the sentinel and, when present, the underlying APIError so
// errors.As(err, *APIError) keeps working.
func (e *NotFoundError) Unwrap() []error {
	if e.API == nil {
		return []error{ErrNotFound}
	}

	return []error{ErrNotFound, e.API}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource, id string, api *APIError) error {
	return &NotFoundError{Resource: resource, ID: id, API: api}
}

// DecodeError reports a body that was not valid for the expected entity.
type DecodeError struct {
	Resource  string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decoding response: %v", e.Resource, e.Operation, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// NewDecodeError creates a decode error with context.
func NewDecodeError(resource, operation string, err error) error {
	return &DecodeError{Resource: resource, Operation: operation, Err: err}
}

// NewInvalidArgumentError reports a rejected argument.
func NewInvalidArgumentError(field, message string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, field, message)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAPIError checks if an error came from an upstream non-success response.
// Not found errors are API errors too.
func IsAPIError(err error) bool {
	return errors.Is(err, ErrAPI)
}

// IsTransport checks if an error is a transport failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsDecode checks if an error is a decode failure.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsInvalidArgument checks if a call was rejected locally.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

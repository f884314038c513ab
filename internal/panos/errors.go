package panos

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies an API failure for retry purposes.
// The taxonomy is closed: a kind is either transient (worth retrying)
// or permanent (fails immediately).
type Kind int

const (
	// KindUnknown covers unclassified failures; treated as permanent
	KindUnknown Kind = iota

	// KindTimeout is a network or gateway timeout
	KindTimeout

	// KindBusy is a temporarily unavailable management plane
	KindBusy

	// KindRateLimited is an explicit throttle signal from the device
	KindRateLimited

	// KindAuth is an authentication or authorization failure
	KindAuth

	// KindValidation is a malformed request or object definition
	KindValidation

	// KindConflict is a name collision or dangling reference
	KindConflict

	// KindNotFound is a reference to an object that does not exist
	KindNotFound
)

// String returns the kind name used in logs and error messages
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindBusy:
		return "busy"
	case KindRateLimited:
		return "rate-limited"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Transient reports whether errors of this kind are likely to succeed
// on retry
func (k Kind) Transient() bool {
	switch k {
	case KindTimeout, KindBusy, KindRateLimited:
		return true
	default:
		return false
	}
}

// APIError is a failure reported by the PAN-OS XML API or the transport
// underneath it
type APIError struct {
	// Kind is the retry classification
	Kind Kind

	// Code is the PAN-OS response code attribute, if present
	Code string

	// Status is the HTTP status, if the failure happened at that layer
	Status int

	// Msg is the device's message text
	Msg string
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("panos: %s (code %s): %s", e.Kind, e.Code, e.Msg)
	case e.Status != 0:
		return fmt.Sprintf("panos: %s (http %d): %s", e.Kind, e.Status, e.Msg)
	default:
		return fmt.Sprintf("panos: %s: %s", e.Kind, e.Msg)
	}
}

// IsTransient reports whether an error is worth retrying.
// This is the predicate wired into the executor's retry policy.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// Context errors are the caller's decision, never retried here.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind.Transient()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// IsNotFound reports whether an error is a missing-object failure
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsAuth reports whether an error is an authentication failure
func IsAuth(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}

// classifyHTTP maps an HTTP status code to an APIError
func classifyHTTP(status int, body string) *APIError {
	kind := KindUnknown
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusConflict:
		kind = KindConflict
	case http.StatusTooManyRequests:
		kind = KindRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		kind = KindBusy
	case http.StatusGatewayTimeout:
		kind = KindTimeout
	}
	return &APIError{Kind: kind, Status: status, Msg: body}
}

// classifyCode maps a PAN-OS XML API response code to an APIError.
// Codes follow the documented pan-xapi error table; anything
// unrecognized is permanent.
func classifyCode(code, msg string) *APIError {
	kind := KindUnknown
	switch code {
	case "403":
		// Invalid credentials / key
		kind = KindAuth
	case "1", "5":
		// Internal errors the device may recover from
		kind = KindBusy
	case "3", "6", "12", "14", "400":
		// Malformed xpath, invalid object, bad request
		kind = KindValidation
	case "7":
		// Object not present
		kind = KindNotFound
	case "8", "10", "11":
		// Non-unique name, dangling reference
		kind = KindConflict
	}
	return &APIError{Kind: kind, Code: code, Msg: msg}
}

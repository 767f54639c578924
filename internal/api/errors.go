package api

import (
	"errors"
	"fmt"
)

// Kind classifies a backend failure.
type Kind string

const (
	// KindNotFound means the backend has no resource with the given identifier
	KindNotFound Kind = "not_found"

	// KindValidation means the backend rejected the request payload
	KindValidation Kind = "validation"

	// KindAuthentication means the backend rejected the request credentials
	KindAuthentication Kind = "authentication"

	// KindServer covers transport failures and any other non-success status
	KindServer Kind = "server"
)

// Sentinel errors for matching with errors.Is
var (
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("invalid request")
	ErrAuthentication = errors.New("authentication failed")
	ErrServer         = errors.New("backend error")
)

// Error is the classified failure returned by every client operation.
type Error struct {
	// Kind is the failure classification
	Kind Kind

	// StatusCode is the HTTP status the backend returned, 0 for transport failures
	StatusCode int

	// Resource is the resource type being accessed, e.g. "club"
	Resource string

	// ResourceID is the identifier of the resource, if applicable
	ResourceID string

	// Message is the backend's error body or the transport error text
	Message string

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		if e.ResourceID != "" {
			return fmt.Sprintf("%s %q not found", e.Resource, e.ResourceID)
		}
		return fmt.Sprintf("%s not found", e.Resource)
	case KindValidation:
		return fmt.Sprintf("invalid %s request: %s", e.Resource, e.Message)
	case KindAuthentication:
		return fmt.Sprintf("authentication error: %s", e.Message)
	default:
		if e.StatusCode > 0 {
			return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("backend request failed: %s", e.Message)
	}
}

// Unwrap exposes the underlying transport error, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is maps each error kind to its sentinel so callers can use errors.Is
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrAuthentication:
		return e.Kind == KindAuthentication
	case ErrServer:
		return e.Kind == KindServer
	}
	return false
}

// classifyStatus maps an HTTP status code to an error kind.
func classifyStatus(status int) Kind {
	switch {
	case status == 404:
		return KindNotFound
	case status == 400:
		return KindValidation
	case status == 401 || status == 403:
		return KindAuthentication
	default:
		return KindServer
	}
}

// retryable reports whether a failure is transient. Deterministic
// rejections (validation, not-found, auth) never change on retry.
func retryable(e *Error) bool {
	if e.Kind != KindServer {
		return false
	}
	// Transport failures have no status code
	return e.StatusCode == 0 || e.StatusCode >= 500
}

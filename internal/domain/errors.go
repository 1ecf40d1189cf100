package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed or missing input the caller can correct.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds a ValidationError from a format string.
func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError reports a role mismatch.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NewAuthorization builds an AuthorizationError from a format string.
func NewAuthorization(format string, args ...any) error {
	return &AuthorizationError{Message: fmt.Sprintf(format, args...)}
}

// OwnershipError reports that the principal is not the owner of the entity
// it tried to mutate or inspect. Surfaced with the same status as an
// authorization failure but kept distinct for logging and tests.
type OwnershipError struct {
	Message string
}

func (e *OwnershipError) Error() string { return e.Message }

// NewOwnership builds an OwnershipError from a format string.
func NewOwnership(format string, args ...any) error {
	return &OwnershipError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound builds a NotFoundError from a format string.
func NewNotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// StateConflictError reports an operation invalid for the entity's current
// state, such as donating to a closed campaign.
type StateConflictError struct {
	Message string
}

func (e *StateConflictError) Error() string { return e.Message }

// NewStateConflict builds a StateConflictError from a format string.
func NewStateConflict(format string, args ...any) error {
	return &StateConflictError{Message: fmt.Sprintf(format, args...)}
}

// TransactionError reports that an atomic multi-step effect could not be
// committed. The ledger guarantees no partial effect survives when this is
// returned.
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction failed: %v", e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// InternalError wraps an unexpected store or infrastructure failure.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// HTTPStatus maps a domain error to its stable status code. State conflicts
// surface as 400 to match what API clients already handle; unknown errors
// are internal failures.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		authz      *AuthorizationError
		ownership  *OwnershipError
		notFound   *NotFoundError
		conflict   *StateConflictError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &authz), errors.As(err, &ownership):
		return http.StatusForbidden
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// State machine violations.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPrecondition      = errors.New("precondition failed")

	// Batch forwarding violations.
	ErrInvalidCandidateState = errors.New("candidate not in forwardable state")
	ErrInvalidSubset         = errors.New("candidate not part of batch")
	ErrAlreadyDecided        = errors.New("candidate already decided")

	// A conditional store write lost the race against a concurrent writer.
	ErrConcurrentModification = errors.New("concurrent modification")

	// Soft signal: no mentor has spare capacity. Never fatal to an approval.
	ErrAllocationUnavailable = errors.New("no mentor available")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError reports an attempted edge that the request status graph
// does not contain. Stored status is guaranteed unchanged by the caller.
type TransitionError struct {
	RequestID uuid.UUID
	From      RequestStatus
	To        RequestStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("request %s: transition %s -> %s not allowed", e.RequestID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// CandidateStateError lists the candidates that blocked a batch forward
// because their request was not APPROVED at forward time.
type CandidateStateError struct {
	CandidateIDs []uuid.UUID
}

func (e *CandidateStateError) Error() string {
	return fmt.Sprintf("batch forward: %d candidate(s) not approved", len(e.CandidateIDs))
}

func (e *CandidateStateError) Unwrap() error { return ErrInvalidCandidateState }

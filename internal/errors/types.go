package errors

import (
	"errors"
	"fmt"
)

// PreconditionError reports a request rejected before any model call was made,
// such as a chat request carrying no message, image, or audio.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// CollaboratorError represents a failure of the external generative model:
// network error, non-success status, or timeout. Single attempt, never retried.
type CollaboratorError struct {
	Err        error
	StatusCode int // HTTP status code if applicable
}

func (e *CollaboratorError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("model request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("model request failed: %v", e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// ContractError reports an internal inconsistency between pipeline stages,
// e.g. an extracted record whose date strings fail to parse during calendar
// construction. These must surface, not be silently defaulted.
type ContractError struct {
	Stage string
	Err   error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s produced an inconsistent record: %v", e.Stage, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// IsPrecondition checks whether err is a request precondition failure.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// IsCollaborator checks whether err originated in the external model call.
func IsCollaborator(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}

// IsContract checks whether err is an internal pipeline contract violation.
func IsContract(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

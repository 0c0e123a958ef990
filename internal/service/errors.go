package service

import "errors"

// Failure taxonomy shared across services. Every error here is recoverable at
// the call site; handlers translate them into user-facing responses.
var (
	// ErrValidation indicates a required field is missing or a field holds a
	// value the operation cannot accept.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateEmail indicates a registration reused an existing email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials indicates no user matches the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrCourseNotFound indicates the referenced course does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrAssignmentNotFound indicates the referenced assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrGroupNotFound indicates no group exists for the assignment.
	ErrGroupNotFound = errors.New("group not found")
	// ErrGroupExists indicates the assignment already has a group.
	ErrGroupExists = errors.New("group already exists for assignment")
	// ErrForbidden indicates the caller lacks ownership or the required role.
	ErrForbidden = errors.New("operation not permitted")
	// ErrNotInGroup indicates the caller has no group record for the
	// assignment. This is an actionable "needs group" state, not a hard
	// authorization failure, and handlers must surface it as such.
	ErrNotInGroup = errors.New("not part of any group for this assignment")
	// ErrAlreadyAcknowledged indicates a group acknowledgment was attempted
	// after the terminal state was reached.
	ErrAlreadyAcknowledged = errors.New("assignment already acknowledged")
)

package participants

import "errors"

// Service and repository errors.
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDuplicateEmail      = errors.New("participant with this email already exists")
	ErrEmailMismatch       = errors.New("email in body does not match email in path")
)

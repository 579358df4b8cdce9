package identity

import "errors"

// Credential gate errors. All map to 401 at the HTTP layer; anything
// else coming out of Authenticate is an infrastructure failure.
var (
	ErrAuthScheme         = errors.New("missing or malformed authorization scheme")
	ErrAuthFormat         = errors.New("malformed basic auth credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
)

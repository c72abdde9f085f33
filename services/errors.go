// services/errors.go - Error taxonomy shared by all services
package services

import "errors"

// Sentinel errors returned by service operations. Handlers map them to
// HTTP status codes with errors.Is; services wrap them with context via
// fmt.Errorf("%w: ...").
var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("invalid input")

	// ErrConflict marks a uniqueness violation (duplicate email,
	// username, team name or repeat task completion).
	ErrConflict = errors.New("already exists")

	// ErrNotFound marks a reference to an unknown entity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so callers cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

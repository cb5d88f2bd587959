package workflow

import "errors"

// Sentinel errors surfaced by workflow operations. Handlers translate
// these into HTTP statuses at the boundary.
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

// Actor is the authenticated caller on whose behalf an operation
// runs, resolved from the session token before the workflow is
// reached.
type Actor struct {
	ID   uint
	Role string
}

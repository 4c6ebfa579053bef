package domain

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned by mutating operations when no session
// is active. Default deny: no session, no effect.
var ErrNotAuthenticated = errors.New("not authenticated")

// PermissionError is returned when the session user's role is not in the
// operation's required role set. The store never silently no-ops.
type PermissionError struct {
	Op   string
	Role Role
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: role %q may not %s", e.Role, e.Op)
}

// NotFoundError is returned when an operation targets an id that is not in
// the collection.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// PersistenceError wraps a failed gateway call. Code carries the backend
// error code when the driver reports one.
type PersistenceError struct {
	Op   string
	Code string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %v (code %s)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError reports a malformed input, such as a bulk-import row set
// missing a required column.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

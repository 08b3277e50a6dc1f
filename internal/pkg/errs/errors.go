// Package errs defines the recoverable error kinds surfaced by the dispatch
// core. Handlers map them to client-visible responses; none should crash the
// process.
package errs

import "errors"

var (
	// ErrNotFound indicates an unknown driver or request id
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidState indicates the operation is not valid for the current lifecycle state
	ErrInvalidState = errors.New("operation not valid for current state")
	// ErrAlreadyTaken indicates the caller lost the acceptance race
	ErrAlreadyTaken = errors.New("ride request already taken")
	// ErrInvalidCoordinates indicates malformed geo input
	ErrInvalidCoordinates = errors.New("invalid location coordinates")
	// ErrDriverNotFound indicates a ledger operation on an unknown driver
	ErrDriverNotFound = errors.New("driver not found")
	// ErrDriverBusy indicates the driver already holds an accepted ride
	ErrDriverBusy = errors.New("driver already has an active ride")
)

// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between failure scenarios: ErrProductNotFound maps to an
// HTTP 404, ErrForbidden to 403, and so on.
package repository

import "errors"

// ErrProductNotFound is returned when no product exists for a code.
var ErrProductNotFound = errors.New("product not found")

// ErrReservationNotFound is returned when no reservation exists for an id.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into an HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition is returned when a reservation status update targets
// a reservation that is already in a terminal state. Handlers translate
// this into an HTTP 409.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrEmailExists is returned when registration hits the unique email index.
var ErrEmailExists = errors.New("email already exists")

package service

import "errors"

// Domain errors surfaced by the services. Handlers translate them to HTTP
// statuses with errors.Is.
var (
	// ErrInvalidQuantity is returned when a cart add is attempted with a
	// quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrEmptyCart is returned when a reservation is submitted from a cart
	// with no effective lines.
	ErrEmptyCart = errors.New("cart is empty")
)

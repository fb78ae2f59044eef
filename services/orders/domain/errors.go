package domain

import "errors"

// Sentinel errors for the orders domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNoLineItems indicates an order request with an empty line item list.
	ErrNoLineItems = errors.New("order must contain at least one line item")

	// ErrInvalidCustomer indicates a missing or malformed customer name.
	ErrInvalidCustomer = errors.New("invalid customer name")

	// ErrInvalidQuantity indicates a line item quantity below 1.
	ErrInvalidQuantity = errors.New("line item quantity must be at least 1")
)

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates a rename would collide with another item.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidCategory indicates a missing or malformed category.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidQuantity indicates a negative quantity was supplied.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidPrice indicates a negative unit price was supplied.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInsufficientStock indicates an adjustment would drive quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports which item could not cover a requested
// quantity. It unwraps to ErrInsufficientStock so callers can match the
// sentinel with errors.Is().
type InsufficientStockError struct {
	Item      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d", e.Item, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

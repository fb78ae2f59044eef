package models

import (
	"fmt"
	"strings"
	"unicode"
)

// ItemName is a value object representing a valid item name.
// Matching against existing inventory is always case-insensitive, so two
// ItemNames differing only in case refer to the same item.
type ItemName string

const (
	minItemNameLength = 1
	maxItemNameLength = 255
)

// NewItemName constructs a valid ItemName or returns an error if constraints
// are violated: length 1–255, no surrounding whitespace, no control characters.
func NewItemName(s string) (ItemName, error) {
	if len(s) < minItemNameLength {
		return "", fmt.Errorf("item name must be at least %d character", minItemNameLength)
	}
	if len(s) > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	if s != strings.TrimSpace(s) {
		return "", fmt.Errorf("item name must not have leading or trailing whitespace")
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("item name must not be only whitespace")
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("item name must not contain control characters")
		}
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}

// EqualFold reports whether the name matches s ignoring case.
func (n ItemName) EqualFold(s string) bool {
	return strings.EqualFold(string(n), s)
}

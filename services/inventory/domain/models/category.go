package models

import (
	"fmt"
	"strings"
)

// Category is a value object for a category identifier. Categories are
// created implicitly the first time an item references them and are never
// deleted independently.
type Category string

const maxCategoryLength = 255

// NewCategory validates and constructs a Category.
func NewCategory(s string) (Category, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("category is required")
	}
	if len(s) > maxCategoryLength {
		return "", fmt.Errorf("category must not exceed %d characters", maxCategoryLength)
	}
	return Category(strings.TrimSpace(s)), nil
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}

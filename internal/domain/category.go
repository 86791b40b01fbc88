// Package domain contains the core data types for the Guidebook API.
// This package has no dependencies on other internal packages and is
// imported by every layer (repo, service, handler).
package domain

import (
	"fmt"
	"strings"
)

// Category is one of the four top-level guide sections.
type Category string

const (
	CategoryEat   Category = "Eat"
	CategoryStay  Category = "Stay"
	CategoryDrink Category = "Drink"
	CategoryPlay  Category = "Play"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryEat, CategoryStay, CategoryDrink, CategoryPlay}

// ParseCategory matches s case-insensitively against the known categories.
// Returns ErrValidation for anything else, including the empty string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

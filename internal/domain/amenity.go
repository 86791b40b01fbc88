package domain

import "github.com/google/uuid"

// AmenityOption is a selectable amenity label offered for one category
// (e.g. "Free Wi-Fi" for Stay, "Outdoor seating" for Eat).
type AmenityOption struct {
	ID       uuid.UUID
	Category Category
	Label    string
}

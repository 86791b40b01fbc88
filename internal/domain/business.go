package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business is a real listing managed through the admin panel.
// OwnerID and SubscriptionPlanID are nil when unassigned.
type Business struct {
	ID                 uuid.UUID
	OwnerID            *uuid.UUID
	Name               string
	Category           Category
	Region             string
	Country            string
	City               string
	Address            string
	Phone              string
	Email              string
	Website            string
	Description        string
	Amenities          []string
	SubscriptionPlanID *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BusinessFilter narrows an admin business listing.
// Query matches the business name case-insensitively; empty means no filter.
type BusinessFilter struct {
	Query string
}

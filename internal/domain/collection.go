package domain

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a user-owned, named group of saved records.
// Names are not unique; a user may own several collections called the same thing.
type Collection struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// SavedRestaurant is a snapshot of one BusinessRecord taken at save time.
// There is no link back to the generator; the record never changes after saving.
type SavedRestaurant struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	UserID       uuid.UUID
	Record       BusinessRecord
	CreatedAt    time.Time
}

// ShareLink grants read-only, unauthenticated access to one collection.
// ExpiresAt is nil for links that never expire.
type ShareLink struct {
	Token        string
	CollectionID uuid.UUID
	CreatedAt    time.Time
	ExpiresAt    *time.Time
}

// Expired reports whether the link is past its expiry at now.
func (l ShareLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}

// SharedCollection is what an anonymous visitor sees when resolving a share token.
type SharedCollection struct {
	Collection Collection
	Saved      []SavedRestaurant
	ExpiresAt  *time.Time
}

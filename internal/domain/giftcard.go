package domain

import (
	"time"

	"github.com/google/uuid"
)

// GiftCard is a prepaid balance issued by a business.
// Amounts are stored in minor units (cents). ExpiresOn is a calendar date
// and is nil for cards that never expire.
type GiftCard struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	Code         string
	AmountCents  int64
	BalanceCents int64
	Currency     string
	ExpiresOn    *time.Time
	CreatedAt    time.Time
}

// Expired reports whether the card can no longer be used at now.
// A card is valid through the whole of its expiry date.
func (g GiftCard) Expired(now time.Time) bool {
	if g.ExpiresOn == nil {
		return false
	}
	return now.After(g.ExpiresOn.AddDate(0, 0, 1))
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier is the level of a subscription plan.
type Tier string

const (
	TierFree    Tier = "free"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierPremium:
		return true
	}
	return false
}

// BillingInterval is how often a plan is billed.
type BillingInterval string

const (
	BillingMonthly BillingInterval = "month"
	BillingYearly  BillingInterval = "year"
)

// Valid reports whether b is a known interval.
func (b BillingInterval) Valid() bool {
	return b == BillingMonthly || b == BillingYearly
}

// SubscriptionPlan is a purchasable tier a business can be assigned to.
type SubscriptionPlan struct {
	ID         uuid.UUID
	Name       string
	Tier       Tier
	PriceCents int64
	Interval   BillingInterval
	Features   []string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

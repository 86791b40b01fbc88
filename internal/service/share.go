package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// MaxShareHours is the longest expiry a share link may be given (one year).
const MaxShareHours = 24 * 365

// ShareService issues and resolves read-only collection share links.
type ShareService struct {
	collections repo.CollectionRepo
	saved       repo.SavedRepo
	shares      repo.ShareRepo
	now         func() time.Time
}

// NewShareService constructs a ShareService backed by the provided repos.
func NewShareService(collections repo.CollectionRepo, saved repo.SavedRepo, shares repo.ShareRepo) *ShareService {
	return &ShareService{collections: collections, saved: saved, shares: shares, now: time.Now}
}

// WithClock replaces the time source. Tests only.
func (s *ShareService) WithClock(now func() time.Time) *ShareService {
	s.now = now
	return s
}

// Share creates a link to one of the user's collections. expiresInHours is
// optional; nil makes a link that never expires.
func (s *ShareService) Share(ctx context.Context, userID, collectionID uuid.UUID, expiresInHours *int) (domain.ShareLink, error) {
	var expiresAt *time.Time
	if expiresInHours != nil {
		h := *expiresInHours
		if h < 1 || h > MaxShareHours {
			return domain.ShareLink{}, fmt.Errorf("%w: expires_in_hours must be between 1 and %d", domain.ErrValidation, MaxShareHours)
		}
		t := s.now().Add(time.Duration(h) * time.Hour)
		expiresAt = &t
	}

	if _, err := s.collections.GetByID(ctx, userID, collectionID); err != nil {
		return domain.ShareLink{}, fmt.Errorf("service.ShareService.Share: %w", err)
	}

	token, err := auth.NewToken()
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("service.ShareService.Share: new token: %w", err)
	}
	link, err := s.shares.Create(ctx, domain.ShareLink{Token: token, CollectionID: collectionID, ExpiresAt: expiresAt})
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("service.ShareService.Share: %w", err)
	}
	return link, nil
}

// Resolve returns the shared collection and its records for an anonymous visitor.
// Returns domain.ErrNotFound for unknown tokens and domain.ErrExpired for
// links past their expiry.
func (s *ShareService) Resolve(ctx context.Context, token string) (domain.SharedCollection, error) {
	if !auth.ValidToken(token) {
		return domain.SharedCollection{}, fmt.Errorf("service.ShareService.Resolve: %w", domain.ErrNotFound)
	}
	link, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		return domain.SharedCollection{}, fmt.Errorf("service.ShareService.Resolve: %w", err)
	}
	if link.Expired(s.now()) {
		return domain.SharedCollection{}, fmt.Errorf("service.ShareService.Resolve: %w: share link has expired", domain.ErrExpired)
	}

	c, err := s.collections.GetByIDUnscoped(ctx, link.CollectionID)
	if err != nil {
		return domain.SharedCollection{}, fmt.Errorf("service.ShareService.Resolve: %w", err)
	}
	saved, err := s.saved.ListByCollection(ctx, c.ID)
	if err != nil {
		return domain.SharedCollection{}, fmt.Errorf("service.ShareService.Resolve: %w", err)
	}
	if saved == nil {
		saved = []domain.SavedRestaurant{}
	}
	return domain.SharedCollection{Collection: c, Saved: saved, ExpiresAt: link.ExpiresAt}, nil
}

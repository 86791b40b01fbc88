package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// Overview is the admin dashboard summary.
type Overview struct {
	Businesses int64
	Plans      int64
	GiftCards  int64
	Amenities  int64
}

// AdminService implements the admin dashboard and role grants.
type AdminService struct {
	users      repo.UserRepo
	businesses repo.BusinessRepo
	plans      repo.PlanRepo
	cards      repo.GiftCardRepo
	amenities  repo.AmenityRepo
}

// NewAdminService constructs an AdminService backed by the provided repos.
func NewAdminService(users repo.UserRepo, businesses repo.BusinessRepo, plans repo.PlanRepo, cards repo.GiftCardRepo, amenities repo.AmenityRepo) *AdminService {
	return &AdminService{users: users, businesses: businesses, plans: plans, cards: cards, amenities: amenities}
}

// GrantAdmin gives the admin role to the user registered under email.
// Granting to an existing admin is a no-op. Returns domain.ErrNotFound if
// nobody has that email.
func (s *AdminService) GrantAdmin(ctx context.Context, email string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	u, err := s.users.SetRoleByEmail(ctx, email, domain.RoleAdmin)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AdminService.GrantAdmin: %w", err)
	}
	return u, nil
}

// Overview counts every admin-managed table concurrently.
// The first failing count cancels the others.
func (s *AdminService) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	g, ctx := errgroup.WithContext(ctx)

	counters := []struct {
		name  string
		count func(context.Context) (int64, error)
		dst   *int64
	}{
		{"businesses", s.businesses.Count, &o.Businesses},
		{"plans", s.plans.Count, &o.Plans},
		{"gift cards", s.cards.Count, &o.GiftCards},
		{"amenities", s.amenities.Count, &o.Amenities},
	}
	for _, c := range counters {
		g.Go(func() error {
			n, err := c.count(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
			*c.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Overview{}, fmt.Errorf("service.AdminService.Overview: %w", err)
	}
	return o, nil
}

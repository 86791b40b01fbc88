package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// BusinessService implements admin management of business listings.
type BusinessService struct {
	businesses repo.BusinessRepo
	plans      repo.PlanRepo
}

// NewBusinessService constructs a BusinessService backed by the provided repos.
func NewBusinessService(businesses repo.BusinessRepo, plans repo.PlanRepo) *BusinessService {
	return &BusinessService{businesses: businesses, plans: plans}
}

// Create validates and persists a new business.
func (s *BusinessService) Create(ctx context.Context, b domain.Business) (domain.Business, error) {
	b = normalizeBusiness(b)
	if err := validateBusiness(b); err != nil {
		return domain.Business{}, err
	}
	if b.SubscriptionPlanID != nil {
		if _, err := s.plans.GetByID(ctx, *b.SubscriptionPlanID); err != nil {
			return domain.Business{}, fmt.Errorf("service.BusinessService.Create: plan: %w", err)
		}
	}
	result, err := s.businesses.Create(ctx, b)
	if err != nil {
		return domain.Business{}, fmt.Errorf("service.BusinessService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns domain.ErrNotFound if the business does not exist.
func (s *BusinessService) GetByID(ctx context.Context, id uuid.UUID) (domain.Business, error) {
	result, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return domain.Business{}, fmt.Errorf("service.BusinessService.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of businesses matching f.
func (s *BusinessService) List(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error) {
	f.Query = strings.TrimSpace(f.Query)
	page, err := s.businesses.List(ctx, f, p)
	if err != nil {
		return domain.Page[domain.Business]{}, fmt.Errorf("service.BusinessService.List: %w", err)
	}
	if page.Items == nil {
		page.Items = []domain.Business{}
	}
	return page, nil
}

// Update validates and replaces an existing business.
func (s *BusinessService) Update(ctx context.Context, b domain.Business) (domain.Business, error) {
	b = normalizeBusiness(b)
	if err := validateBusiness(b); err != nil {
		return domain.Business{}, err
	}
	result, err := s.businesses.Update(ctx, b)
	if err != nil {
		return domain.Business{}, fmt.Errorf("service.BusinessService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a business and the gift cards it issued.
func (s *BusinessService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.businesses.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.BusinessService.Delete: %w", err)
	}
	return nil
}

// SetSubscription assigns a plan to the business, or unassigns it when planID is nil.
// Returns domain.ErrNotFound if either the business or the plan does not exist.
func (s *BusinessService) SetSubscription(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error) {
	if planID != nil {
		if _, err := s.plans.GetByID(ctx, *planID); err != nil {
			return domain.Business{}, fmt.Errorf("service.BusinessService.SetSubscription: plan: %w", err)
		}
	}
	result, err := s.businesses.SetSubscription(ctx, id, planID)
	if err != nil {
		return domain.Business{}, fmt.Errorf("service.BusinessService.SetSubscription: %w", err)
	}
	return result, nil
}

func normalizeBusiness(b domain.Business) domain.Business {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	amenities := make([]string, 0, len(b.Amenities))
	for _, a := range b.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	b.Amenities = amenities
	return b
}

// validateBusiness enforces rules common to Create and Update.
// Location fields are free text; the listing may be anywhere.
func validateBusiness(b domain.Business) error {
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !b.Category.Valid() {
		return fmt.Errorf("%w: category must be one of Eat, Stay, Drink, Play", domain.ErrValidation)
	}
	if b.Email != "" && !validEmail(b.Email) {
		return fmt.Errorf("%w: email is not a valid address", domain.ErrValidation)
	}
	return nil
}

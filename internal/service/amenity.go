package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// AmenityService implements admin management of amenity options.
type AmenityService struct {
	amenities repo.AmenityRepo
}

// NewAmenityService constructs an AmenityService backed by the provided AmenityRepo.
func NewAmenityService(amenities repo.AmenityRepo) *AmenityService {
	return &AmenityService{amenities: amenities}
}

// Create returns domain.ErrConflict if the category already has that label.
func (s *AmenityService) Create(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	a.Label = strings.TrimSpace(a.Label)
	if err := validateAmenity(a); err != nil {
		return domain.AmenityOption{}, err
	}
	result, err := s.amenities.Create(ctx, a)
	if err != nil {
		return domain.AmenityOption{}, fmt.Errorf("service.AmenityService.Create: %w", err)
	}
	return result, nil
}

// List returns every option, or only one category's when category is non-nil.
func (s *AmenityService) List(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *category)
	}
	out, err := s.amenities.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("service.AmenityService.List: %w", err)
	}
	if out == nil {
		return []domain.AmenityOption{}, nil
	}
	return out, nil
}

func (s *AmenityService) Update(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	a.Label = strings.TrimSpace(a.Label)
	if err := validateAmenity(a); err != nil {
		return domain.AmenityOption{}, err
	}
	result, err := s.amenities.Update(ctx, a)
	if err != nil {
		return domain.AmenityOption{}, fmt.Errorf("service.AmenityService.Update: %w", err)
	}
	return result, nil
}

func (s *AmenityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.amenities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.AmenityService.Delete: %w", err)
	}
	return nil
}

func validateAmenity(a domain.AmenityOption) error {
	if !a.Category.Valid() {
		return fmt.Errorf("%w: category must be one of Eat, Stay, Drink, Play", domain.ErrValidation)
	}
	if a.Label == "" {
		return fmt.Errorf("%w: label is required", domain.ErrValidation)
	}
	return nil
}

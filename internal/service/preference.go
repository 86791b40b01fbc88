package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/i18n"
	"github.com/pkordes/guidebook/internal/repo"
	"github.com/pkordes/guidebook/internal/taxonomy"
)

// PreferenceService stores per-user defaults for the picker and language.
type PreferenceService struct {
	prefs repo.PreferenceRepo
	tax   *taxonomy.Taxonomy
}

// NewPreferenceService constructs a PreferenceService validating against tax.
func NewPreferenceService(prefs repo.PreferenceRepo, tax *taxonomy.Taxonomy) *PreferenceService {
	return &PreferenceService{prefs: prefs, tax: tax}
}

// Get returns the user's preferences. A user who never saved any gets an
// empty set rather than an error.
func (s *PreferenceService) Get(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error) {
	p, err := s.prefs.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.UserPreference{UserID: userID}, nil
	}
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("service.PreferenceService.Get: %w", err)
	}
	return p, nil
}

// Update validates and replaces the user's preferences.
func (s *PreferenceService) Update(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error) {
	p.Language = strings.ToLower(strings.TrimSpace(p.Language))
	p.DefaultCategory = strings.TrimSpace(p.DefaultCategory)
	p.DefaultRegion = strings.TrimSpace(p.DefaultRegion)
	p.DefaultCountry = strings.TrimSpace(p.DefaultCountry)
	if err := s.validate(p); err != nil {
		return domain.UserPreference{}, err
	}
	result, err := s.prefs.Upsert(ctx, p)
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("service.PreferenceService.Update: %w", err)
	}
	return result, nil
}

func (s *PreferenceService) validate(p domain.UserPreference) error {
	if p.Language != "" && !i18n.IsSupported(p.Language) {
		return fmt.Errorf("%w: language must be one of en, es, fr", domain.ErrValidation)
	}
	if p.DefaultCategory != "" && !domain.Category(p.DefaultCategory).Valid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, p.DefaultCategory)
	}
	if p.DefaultRegion != "" && !s.tax.HasRegion(p.DefaultRegion) {
		return fmt.Errorf("%w: unknown region %q", domain.ErrValidation, p.DefaultRegion)
	}
	if p.DefaultCountry != "" {
		if p.DefaultRegion == "" {
			return fmt.Errorf("%w: a default country needs a default region", domain.ErrValidation)
		}
		if !s.tax.HasCountry(p.DefaultRegion, p.DefaultCountry) {
			return fmt.Errorf("%w: %q is not in %q", domain.ErrValidation, p.DefaultCountry, p.DefaultRegion)
		}
	}
	return nil
}

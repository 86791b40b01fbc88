package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// PlanService implements admin management of subscription plans.
type PlanService struct {
	plans repo.PlanRepo
}

// NewPlanService constructs a PlanService backed by the provided PlanRepo.
func NewPlanService(plans repo.PlanRepo) *PlanService {
	return &PlanService{plans: plans}
}

func (s *PlanService) Create(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	p = normalizePlan(p)
	if err := validatePlan(p); err != nil {
		return domain.SubscriptionPlan{}, err
	}
	result, err := s.plans.Create(ctx, p)
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("service.PlanService.Create: %w", err)
	}
	return result, nil
}

func (s *PlanService) GetByID(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error) {
	result, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("service.PlanService.GetByID: %w", err)
	}
	return result, nil
}

func (s *PlanService) List(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	out, err := s.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.List: %w", err)
	}
	if out == nil {
		return []domain.SubscriptionPlan{}, nil
	}
	return out, nil
}

func (s *PlanService) Update(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	p = normalizePlan(p)
	if err := validatePlan(p); err != nil {
		return domain.SubscriptionPlan{}, err
	}
	result, err := s.plans.Update(ctx, p)
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("service.PlanService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a plan. Businesses on it become unassigned.
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PlanService.Delete: %w", err)
	}
	return nil
}

func normalizePlan(p domain.SubscriptionPlan) domain.SubscriptionPlan {
	p.Name = strings.TrimSpace(p.Name)
	p.Tier = domain.Tier(strings.ToLower(strings.TrimSpace(string(p.Tier))))
	p.Interval = domain.BillingInterval(strings.ToLower(strings.TrimSpace(string(p.Interval))))
	if p.Features == nil {
		p.Features = []string{}
	}
	return p
}

func validatePlan(p domain.SubscriptionPlan) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !p.Tier.Valid() {
		return fmt.Errorf("%w: tier must be free, basic or premium", domain.ErrValidation)
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if !p.Interval.Valid() {
		return fmt.Errorf("%w: billing interval must be month or year", domain.ErrValidation)
	}
	return nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// PlanRepo defines the persistence operations for subscription plans.
type PlanRepo interface {
	Create(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)

	// GetByID returns domain.ErrNotFound if no plan has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error)

	// List returns every plan ordered by price, cheapest first.
	List(ctx context.Context) ([]domain.SubscriptionPlan, error)

	// Update returns domain.ErrNotFound if the plan does not exist.
	Update(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error)

	// Delete returns domain.ErrNotFound if the plan does not exist.
	// Businesses on the plan become unassigned.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}

type pgPlanRepo struct {
	db db
}

// NewPlanRepo constructs a PlanRepo backed by the provided db connection.
func NewPlanRepo(db db) PlanRepo {
	return &pgPlanRepo{db: db}
}

const planColumns = `id, name, tier, price_cents, billing_interval, features, active, created_at, updated_at`

func planArgs(p domain.SubscriptionPlan) pgx.NamedArgs {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return pgx.NamedArgs{
		"id":               p.ID,
		"name":             p.Name,
		"tier":             string(p.Tier),
		"price_cents":      p.PriceCents,
		"billing_interval": string(p.Interval),
		"features":         features,
		"active":           p.Active,
	}
}

func (r *pgPlanRepo) Create(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	const q = `
		INSERT INTO subscription_plans (name, tier, price_cents, billing_interval, features, active)
		VALUES (@name, @tier, @price_cents, @billing_interval, @features, @active)
		RETURNING ` + planColumns

	result, err := scanPlan(r.db.QueryRow(ctx, q, planArgs(p)))
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("repo.PlanRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SubscriptionPlan, error) {
	const q = `SELECT ` + planColumns + ` FROM subscription_plans WHERE id = @id`

	result, err := scanPlan(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("repo.PlanRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgPlanRepo) List(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	const q = `SELECT ` + planColumns + ` FROM subscription_plans ORDER BY price_cents, name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.List: %w", err)
	}
	out, err := collectRows(rows, scanPlan)
	if err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.List: %w", err)
	}
	return out, nil
}

func (r *pgPlanRepo) Update(ctx context.Context, p domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	const q = `
		UPDATE subscription_plans SET
			name = @name, tier = @tier, price_cents = @price_cents,
			billing_interval = @billing_interval, features = @features,
			active = @active, updated_at = now()
		WHERE id = @id
		RETURNING ` + planColumns

	result, err := scanPlan(r.db.QueryRow(ctx, q, planArgs(p)))
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("repo.PlanRepo.Update: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM subscription_plans WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PlanRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PlanRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgPlanRepo) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.db, `SELECT count(*) FROM subscription_plans`)
	if err != nil {
		return 0, fmt.Errorf("repo.PlanRepo.Count: %w", err)
	}
	return n, nil
}

func scanPlan(s scanner) (domain.SubscriptionPlan, error) {
	var (
		p        domain.SubscriptionPlan
		id       pgtype.UUID
		tier     string
		interval string
	)
	err := s.Scan(&id, &p.Name, &tier, &p.PriceCents, &interval, &p.Features, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}
	p.ID = uuid.UUID(id.Bytes)
	p.Tier = domain.Tier(tier)
	p.Interval = domain.BillingInterval(interval)
	if p.Features == nil {
		p.Features = []string{}
	}
	return p, nil
}

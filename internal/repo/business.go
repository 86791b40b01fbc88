package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// BusinessRepo defines the persistence operations for admin-managed businesses.
type BusinessRepo interface {
	// Create inserts a business. ID and timestamps are assigned by the database.
	Create(ctx context.Context, b domain.Business) (domain.Business, error)

	// GetByID returns domain.ErrNotFound if no business has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Business, error)

	// List returns one page of businesses ordered by name, plus the total
	// number of businesses matching the filter.
	List(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error)

	// Update replaces every editable field of the business with ID b.ID.
	// The subscription plan is left untouched; use SetSubscription.
	// Returns domain.ErrNotFound if the business does not exist.
	Update(ctx context.Context, b domain.Business) (domain.Business, error)

	// SetSubscription assigns planID to the business; nil unassigns.
	// Returns domain.ErrNotFound if the business does not exist.
	SetSubscription(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error)

	// Delete returns domain.ErrNotFound if the business does not exist.
	// Gift cards issued by the business are removed with it.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of businesses.
	Count(ctx context.Context) (int64, error)
}

type pgBusinessRepo struct {
	db db
}

// NewBusinessRepo constructs a BusinessRepo backed by the provided db connection.
func NewBusinessRepo(db db) BusinessRepo {
	return &pgBusinessRepo{db: db}
}

const businessColumns = `id, owner_id, name, category, region, country, city, address,
	phone, email, website, description, amenities, subscription_plan_id, created_at, updated_at`

func businessArgs(b domain.Business) pgx.NamedArgs {
	amenities := b.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return pgx.NamedArgs{
		"id":          b.ID,
		"owner_id":    b.OwnerID,
		"name":        b.Name,
		"category":    string(b.Category),
		"region":      b.Region,
		"country":     b.Country,
		"city":        b.City,
		"address":     b.Address,
		"phone":       b.Phone,
		"email":       b.Email,
		"website":     b.Website,
		"description": b.Description,
		"amenities":   amenities,
	}
}

func (r *pgBusinessRepo) Create(ctx context.Context, b domain.Business) (domain.Business, error) {
	const q = `
		INSERT INTO businesses (owner_id, name, category, region, country, city, address,
			phone, email, website, description, amenities, subscription_plan_id)
		VALUES (@owner_id, @name, @category, @region, @country, @city, @address,
			@phone, @email, @website, @description, @amenities, @subscription_plan_id)
		RETURNING ` + businessColumns

	args := businessArgs(b)
	args["subscription_plan_id"] = b.SubscriptionPlanID
	result, err := scanBusiness(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Business{}, fmt.Errorf("repo.BusinessRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgBusinessRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Business, error) {
	const q = `SELECT ` + businessColumns + ` FROM businesses WHERE id = @id`

	result, err := scanBusiness(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Business{}, fmt.Errorf("repo.BusinessRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgBusinessRepo) List(ctx context.Context, f domain.BusinessFilter, p domain.PaginationParams) (domain.Page[domain.Business], error) {
	const where = ` WHERE (@q = '' OR name ILIKE '%' || @q || '%')`
	const q = `SELECT ` + businessColumns + ` FROM businesses` + where + `
		ORDER BY lower(name), id
		LIMIT @limit OFFSET @offset`
	const countQ = `SELECT count(*) FROM businesses` + where

	args := pgx.NamedArgs{"q": f.Query, "limit": p.Limit, "offset": p.Offset()}

	total, err := count(ctx, r.db, countQ, args)
	if err != nil {
		return domain.Page[domain.Business]{}, fmt.Errorf("repo.BusinessRepo.List count: %w", err)
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return domain.Page[domain.Business]{}, fmt.Errorf("repo.BusinessRepo.List: %w", err)
	}
	items, err := collectRows(rows, scanBusiness)
	if err != nil {
		return domain.Page[domain.Business]{}, fmt.Errorf("repo.BusinessRepo.List: %w", err)
	}
	return domain.Page[domain.Business]{Items: items, Total: total}, nil
}

func (r *pgBusinessRepo) Update(ctx context.Context, b domain.Business) (domain.Business, error) {
	const q = `
		UPDATE businesses SET
			owner_id = @owner_id, name = @name, category = @category, region = @region,
			country = @country, city = @city, address = @address, phone = @phone,
			email = @email, website = @website, description = @description,
			amenities = @amenities, updated_at = now()
		WHERE id = @id
		RETURNING ` + businessColumns

	result, err := scanBusiness(r.db.QueryRow(ctx, q, businessArgs(b)))
	if err != nil {
		return domain.Business{}, fmt.Errorf("repo.BusinessRepo.Update: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgBusinessRepo) SetSubscription(ctx context.Context, id uuid.UUID, planID *uuid.UUID) (domain.Business, error) {
	const q = `
		UPDATE businesses SET subscription_plan_id = @plan_id, updated_at = now()
		WHERE id = @id
		RETURNING ` + businessColumns

	result, err := scanBusiness(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "plan_id": planID}))
	if err != nil {
		return domain.Business{}, fmt.Errorf("repo.BusinessRepo.SetSubscription: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgBusinessRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM businesses WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.BusinessRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BusinessRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgBusinessRepo) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.db, `SELECT count(*) FROM businesses`)
	if err != nil {
		return 0, fmt.Errorf("repo.BusinessRepo.Count: %w", err)
	}
	return n, nil
}

func scanBusiness(s scanner) (domain.Business, error) {
	var (
		b        domain.Business
		id       pgtype.UUID
		ownerID  pgtype.UUID
		planID   pgtype.UUID
		category string
	)
	err := s.Scan(
		&id, &ownerID, &b.Name, &category, &b.Region, &b.Country, &b.City, &b.Address,
		&b.Phone, &b.Email, &b.Website, &b.Description, &b.Amenities, &planID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Business{}, err
	}
	b.ID = uuid.UUID(id.Bytes)
	b.OwnerID = optionalUUID(ownerID)
	b.SubscriptionPlanID = optionalUUID(planID)
	b.Category = domain.Category(category)
	if b.Amenities == nil {
		b.Amenities = []string{}
	}
	return b, nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// AmenityRepo defines the persistence operations for amenity options.
// (category, label) is unique; duplicates return domain.ErrConflict.
type AmenityRepo interface {
	Create(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)

	// List returns options ordered by category then label,
	// restricted to one category when category is non-nil.
	List(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error)

	// Update returns domain.ErrNotFound if the option does not exist.
	Update(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error)

	// Delete returns domain.ErrNotFound if the option does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}

type pgAmenityRepo struct {
	db db
}

// NewAmenityRepo constructs an AmenityRepo backed by the provided db connection.
func NewAmenityRepo(db db) AmenityRepo {
	return &pgAmenityRepo{db: db}
}

func (r *pgAmenityRepo) Create(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	const q = `
		INSERT INTO amenity_options (category, label)
		VALUES (@category, @label)
		RETURNING id, category, label`

	result, err := scanAmenity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"category": string(a.Category), "label": a.Label}))
	if err != nil {
		return domain.AmenityOption{}, fmt.Errorf("repo.AmenityRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgAmenityRepo) List(ctx context.Context, category *domain.Category) ([]domain.AmenityOption, error) {
	const q = `
		SELECT id, category, label
		FROM amenity_options
		WHERE (@category::text IS NULL OR category = @category)
		ORDER BY category, lower(label)`

	var filter *string
	if category != nil {
		c := string(*category)
		filter = &c
	}
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"category": filter})
	if err != nil {
		return nil, fmt.Errorf("repo.AmenityRepo.List: %w", err)
	}
	out, err := collectRows(rows, scanAmenity)
	if err != nil {
		return nil, fmt.Errorf("repo.AmenityRepo.List: %w", err)
	}
	return out, nil
}

func (r *pgAmenityRepo) Update(ctx context.Context, a domain.AmenityOption) (domain.AmenityOption, error) {
	const q = `
		UPDATE amenity_options SET category = @category, label = @label
		WHERE id = @id
		RETURNING id, category, label`

	args := pgx.NamedArgs{"id": a.ID, "category": string(a.Category), "label": a.Label}
	result, err := scanAmenity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.AmenityOption{}, fmt.Errorf("repo.AmenityRepo.Update: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgAmenityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM amenity_options WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.AmenityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.AmenityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgAmenityRepo) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.db, `SELECT count(*) FROM amenity_options`)
	if err != nil {
		return 0, fmt.Errorf("repo.AmenityRepo.Count: %w", err)
	}
	return n, nil
}

func scanAmenity(s scanner) (domain.AmenityOption, error) {
	var (
		a        domain.AmenityOption
		id       pgtype.UUID
		category string
	)
	if err := s.Scan(&id, &category, &a.Label); err != nil {
		return domain.AmenityOption{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.Category = domain.Category(category)
	return a, nil
}

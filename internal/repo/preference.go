package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// PreferenceRepo defines the persistence operations for user preferences.
type PreferenceRepo interface {
	// Get returns domain.ErrNotFound if the user has never saved preferences.
	Get(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error)

	// Upsert creates or replaces the user's preferences.
	Upsert(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error)
}

type pgPreferenceRepo struct {
	db db
}

// NewPreferenceRepo constructs a PreferenceRepo backed by the provided db connection.
func NewPreferenceRepo(db db) PreferenceRepo {
	return &pgPreferenceRepo{db: db}
}

const preferenceColumns = `user_id, language, default_category, default_region, default_country, updated_at`

func (r *pgPreferenceRepo) Get(ctx context.Context, userID uuid.UUID) (domain.UserPreference, error) {
	const q = `SELECT ` + preferenceColumns + ` FROM user_preferences WHERE user_id = @user_id`

	result, err := scanPreference(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("repo.PreferenceRepo.Get: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgPreferenceRepo) Upsert(ctx context.Context, p domain.UserPreference) (domain.UserPreference, error) {
	const q = `
		INSERT INTO user_preferences (user_id, language, default_category, default_region, default_country)
		VALUES (@user_id, @language, @default_category, @default_region, @default_country)
		ON CONFLICT (user_id) DO UPDATE SET
			language = EXCLUDED.language,
			default_category = EXCLUDED.default_category,
			default_region = EXCLUDED.default_region,
			default_country = EXCLUDED.default_country,
			updated_at = now()
		RETURNING ` + preferenceColumns

	args := pgx.NamedArgs{
		"user_id":          p.UserID,
		"language":         p.Language,
		"default_category": p.DefaultCategory,
		"default_region":   p.DefaultRegion,
		"default_country":  p.DefaultCountry,
	}
	result, err := scanPreference(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.UserPreference{}, fmt.Errorf("repo.PreferenceRepo.Upsert: %w", mapErr(err))
	}
	return result, nil
}

func scanPreference(s scanner) (domain.UserPreference, error) {
	var (
		p      domain.UserPreference
		userID pgtype.UUID
	)
	err := s.Scan(&userID, &p.Language, &p.DefaultCategory, &p.DefaultRegion, &p.DefaultCountry, &p.UpdatedAt)
	if err != nil {
		return domain.UserPreference{}, err
	}
	p.UserID = uuid.UUID(userID.Bytes)
	return p, nil
}

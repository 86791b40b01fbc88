package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// SavedRepo defines the persistence operations for saved_restaurants rows.
// The record is stored as a jsonb snapshot.
type SavedRepo interface {
	// Create stores a snapshot of s.Record in s.CollectionID on behalf of s.UserID.
	Create(ctx context.Context, s domain.SavedRestaurant) (domain.SavedRestaurant, error)

	// ListByCollection returns the saved rows of one collection, oldest first.
	// It does not check ownership; callers resolve the collection first.
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.SavedRestaurant, error)

	// Delete removes a saved row owned by userID.
	// Returns domain.ErrNotFound if no such row exists for that user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type pgSavedRepo struct {
	db db
}

// NewSavedRepo constructs a SavedRepo backed by the provided db connection.
func NewSavedRepo(db db) SavedRepo {
	return &pgSavedRepo{db: db}
}

const savedColumns = `id, collection_id, user_id, payload, created_at`

func (r *pgSavedRepo) Create(ctx context.Context, s domain.SavedRestaurant) (domain.SavedRestaurant, error) {
	const q = `
		INSERT INTO saved_restaurants (collection_id, user_id, payload)
		VALUES (@collection_id, @user_id, @payload)
		RETURNING ` + savedColumns

	args := pgx.NamedArgs{
		"collection_id": s.CollectionID,
		"user_id":       s.UserID,
		"payload":       s.Record, // pgx marshals to jsonb
	}
	result, err := scanSaved(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.SavedRestaurant{}, fmt.Errorf("repo.SavedRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgSavedRepo) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.SavedRestaurant, error) {
	const q = `
		SELECT ` + savedColumns + `
		FROM saved_restaurants
		WHERE collection_id = @collection_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"collection_id": collectionID})
	if err != nil {
		return nil, fmt.Errorf("repo.SavedRepo.ListByCollection: %w", err)
	}
	out, err := collectRows(rows, scanSaved)
	if err != nil {
		return nil, fmt.Errorf("repo.SavedRepo.ListByCollection: %w", err)
	}
	return out, nil
}

func (r *pgSavedRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM saved_restaurants WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.SavedRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SavedRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanSaved(s scanner) (domain.SavedRestaurant, error) {
	var (
		sr           domain.SavedRestaurant
		id           pgtype.UUID
		collectionID pgtype.UUID
		userID       pgtype.UUID
	)
	if err := s.Scan(&id, &collectionID, &userID, &sr.Record, &sr.CreatedAt); err != nil {
		return domain.SavedRestaurant{}, err
	}
	sr.ID = uuid.UUID(id.Bytes)
	sr.CollectionID = uuid.UUID(collectionID.Bytes)
	sr.UserID = uuid.UUID(userID.Bytes)
	return sr, nil
}

package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// CollectionRepo defines the persistence operations for collections.
// Every read and write is scoped by userID: a collection owned by somebody
// else behaves exactly like one that does not exist.
type CollectionRepo interface {
	// Create inserts a collection owned by userID. Names need not be unique.
	Create(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error)

	// GetByID returns domain.ErrNotFound unless the collection exists and is owned by userID.
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Collection, error)

	// GetByIDUnscoped returns a collection regardless of owner.
	// Only share-link resolution may use it.
	GetByIDUnscoped(ctx context.Context, id uuid.UUID) (domain.Collection, error)

	// ListByUser returns the user's collections, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error)

	// Delete removes a collection; the database cascades to its saved rows and share links.
	// Returns domain.ErrNotFound unless the collection exists and is owned by userID.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type pgCollectionRepo struct {
	db db
}

// NewCollectionRepo constructs a CollectionRepo backed by the provided db connection.
func NewCollectionRepo(db db) CollectionRepo {
	return &pgCollectionRepo{db: db}
}

func (r *pgCollectionRepo) Create(ctx context.Context, userID uuid.UUID, name string) (domain.Collection, error) {
	const q = `
		INSERT INTO collections (user_id, name)
		VALUES (@user_id, @name)
		RETURNING id, user_id, name, created_at`

	result, err := scanCollection(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "name": name}))
	if err != nil {
		return domain.Collection{}, fmt.Errorf("repo.CollectionRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgCollectionRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Collection, error) {
	const q = `
		SELECT id, user_id, name, created_at
		FROM collections
		WHERE id = @id AND user_id = @user_id`

	result, err := scanCollection(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Collection{}, fmt.Errorf("repo.CollectionRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgCollectionRepo) GetByIDUnscoped(ctx context.Context, id uuid.UUID) (domain.Collection, error) {
	const q = `SELECT id, user_id, name, created_at FROM collections WHERE id = @id`

	result, err := scanCollection(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Collection{}, fmt.Errorf("repo.CollectionRepo.GetByIDUnscoped: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgCollectionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Collection, error) {
	const q = `
		SELECT id, user_id, name, created_at
		FROM collections
		WHERE user_id = @user_id
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.CollectionRepo.ListByUser: %w", err)
	}
	out, err := collectRows(rows, scanCollection)
	if err != nil {
		return nil, fmt.Errorf("repo.CollectionRepo.ListByUser: %w", err)
	}
	return out, nil
}

func (r *pgCollectionRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM collections WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.CollectionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CollectionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanCollection(s scanner) (domain.Collection, error) {
	var (
		c      domain.Collection
		id     pgtype.UUID
		userID pgtype.UUID
	)
	if err := s.Scan(&id, &userID, &c.Name, &c.CreatedAt); err != nil {
		return domain.Collection{}, err
	}
	c.ID = uuid.UUID(id.Bytes)
	c.UserID = uuid.UUID(userID.Bytes)
	return c, nil
}

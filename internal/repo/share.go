package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// ShareRepo defines the persistence operations for collection share links.
type ShareRepo interface {
	// Create stores a new link. Returns domain.ErrConflict on a token collision.
	Create(ctx context.Context, link domain.ShareLink) (domain.ShareLink, error)

	// GetByToken returns the link for token, expired or not.
	// Returns domain.ErrNotFound if the token is unknown.
	GetByToken(ctx context.Context, token string) (domain.ShareLink, error)
}

type pgShareRepo struct {
	db db
}

// NewShareRepo constructs a ShareRepo backed by the provided db connection.
func NewShareRepo(db db) ShareRepo {
	return &pgShareRepo{db: db}
}

func (r *pgShareRepo) Create(ctx context.Context, link domain.ShareLink) (domain.ShareLink, error) {
	const q = `
		INSERT INTO share_links (token, collection_id, expires_at)
		VALUES (@token, @collection_id, @expires_at)
		RETURNING token, collection_id, created_at, expires_at`

	args := pgx.NamedArgs{
		"token":         link.Token,
		"collection_id": link.CollectionID,
		"expires_at":    link.ExpiresAt, // nil becomes NULL
	}
	result, err := scanShare(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("repo.ShareRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgShareRepo) GetByToken(ctx context.Context, token string) (domain.ShareLink, error) {
	const q = `
		SELECT token, collection_id, created_at, expires_at
		FROM share_links
		WHERE token = @token`

	result, err := scanShare(r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token}))
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("repo.ShareRepo.GetByToken: %w", mapErr(err))
	}
	return result, nil
}

func scanShare(s scanner) (domain.ShareLink, error) {
	var (
		l            domain.ShareLink
		collectionID pgtype.UUID
		expiresAt    pgtype.Timestamptz
	)
	if err := s.Scan(&l.Token, &collectionID, &l.CreatedAt, &expiresAt); err != nil {
		return domain.ShareLink{}, err
	}
	l.CollectionID = uuid.UUID(collectionID.Bytes)
	if expiresAt.Valid {
		ts := expiresAt.Time
		l.ExpiresAt = &ts
	}
	return l, nil
}

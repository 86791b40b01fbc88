package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// SessionRepo defines the persistence operations for sign-in sessions.
type SessionRepo interface {
	// Create stores a new session.
	Create(ctx context.Context, s domain.Session) (domain.Session, error)

	// Get returns the unexpired session for token.
	// Returns domain.ErrNotFound if the token is unknown or expired.
	Get(ctx context.Context, token string) (domain.Session, error)

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes every expired session and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a SessionRepo backed by the provided db connection.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

func (r *pgSessionRepo) Create(ctx context.Context, s domain.Session) (domain.Session, error) {
	const q = `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES (@token, @user_id, @expires_at)
		RETURNING token, user_id, created_at, expires_at`

	args := pgx.NamedArgs{"token": s.Token, "user_id": s.UserID, "expires_at": s.ExpiresAt}
	result, err := scanSession(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgSessionRepo) Get(ctx context.Context, token string) (domain.Session, error) {
	const q = `
		SELECT token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = @token AND expires_at > now()`

	result, err := scanSession(r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token}))
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgSessionRepo) Delete(ctx context.Context, token string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = @token`, pgx.NamedArgs{"token": token}); err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", err)
	}
	return nil
}

func (r *pgSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("repo.SessionRepo.DeleteExpired: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSession(s scanner) (domain.Session, error) {
	var (
		sess   domain.Session
		userID pgtype.UUID
	)
	if err := s.Scan(&sess.Token, &userID, &sess.CreatedAt, &sess.ExpiresAt); err != nil {
		return domain.Session{}, err
	}
	sess.UserID = uuid.UUID(userID.Bytes)
	return sess, nil
}

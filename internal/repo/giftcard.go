package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/guidebook/internal/domain"
)

// GiftCardRepo defines the persistence operations for gift cards.
type GiftCardRepo interface {
	// Create inserts a card. Returns domain.ErrConflict if the code is taken.
	Create(ctx context.Context, g domain.GiftCard) (domain.GiftCard, error)

	// GetByID returns domain.ErrNotFound if no card has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (domain.GiftCard, error)

	// List returns cards newest first, restricted to one business when businessID is non-nil.
	List(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error)

	// Redeem subtracts amountCents from the balance in a single statement.
	// Returns domain.ErrNotFound if the card does not exist and
	// domain.ErrValidation if the balance is lower than amountCents.
	Redeem(ctx context.Context, id uuid.UUID, amountCents int64) (domain.GiftCard, error)

	// Delete returns domain.ErrNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int64, error)
}

type pgGiftCardRepo struct {
	db db
}

// NewGiftCardRepo constructs a GiftCardRepo backed by the provided db connection.
func NewGiftCardRepo(db db) GiftCardRepo {
	return &pgGiftCardRepo{db: db}
}

const giftCardColumns = `id, business_id, code, amount_cents, balance_cents, currency, expires_on, created_at`

func (r *pgGiftCardRepo) Create(ctx context.Context, g domain.GiftCard) (domain.GiftCard, error) {
	const q = `
		INSERT INTO gift_cards (business_id, code, amount_cents, balance_cents, currency, expires_on)
		VALUES (@business_id, @code, @amount_cents, @amount_cents, @currency, @expires_on)
		RETURNING ` + giftCardColumns

	var expiresOn pgtype.Date
	if g.ExpiresOn != nil {
		expiresOn = pgtype.Date{Time: *g.ExpiresOn, Valid: true}
	}
	args := pgx.NamedArgs{
		"business_id":  g.BusinessID,
		"code":         g.Code,
		"amount_cents": g.AmountCents,
		"currency":     g.Currency,
		"expires_on":   expiresOn,
	}
	result, err := scanGiftCard(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.GiftCard{}, fmt.Errorf("repo.GiftCardRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgGiftCardRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.GiftCard, error) {
	const q = `SELECT ` + giftCardColumns + ` FROM gift_cards WHERE id = @id`

	result, err := scanGiftCard(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.GiftCard{}, fmt.Errorf("repo.GiftCardRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgGiftCardRepo) List(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error) {
	const q = `
		SELECT ` + giftCardColumns + `
		FROM gift_cards
		WHERE (@business_id::uuid IS NULL OR business_id = @business_id)
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("repo.GiftCardRepo.List: %w", err)
	}
	out, err := collectRows(rows, scanGiftCard)
	if err != nil {
		return nil, fmt.Errorf("repo.GiftCardRepo.List: %w", err)
	}
	return out, nil
}

func (r *pgGiftCardRepo) Redeem(ctx context.Context, id uuid.UUID, amountCents int64) (domain.GiftCard, error) {
	const q = `
		UPDATE gift_cards SET balance_cents = balance_cents - @amount
		WHERE id = @id AND balance_cents >= @amount
		RETURNING ` + giftCardColumns

	result, err := scanGiftCard(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "amount": amountCents}))
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.GiftCard{}, fmt.Errorf("repo.GiftCardRepo.Redeem: %w", err)
	}
	// No row updated: either the card is gone or the balance is too low.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return domain.GiftCard{}, fmt.Errorf("repo.GiftCardRepo.Redeem: %w", getErr)
	}
	return domain.GiftCard{}, fmt.Errorf("repo.GiftCardRepo.Redeem: %w: insufficient balance", domain.ErrValidation)
}

func (r *pgGiftCardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gift_cards WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.GiftCardRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.GiftCardRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgGiftCardRepo) Count(ctx context.Context) (int64, error) {
	n, err := count(ctx, r.db, `SELECT count(*) FROM gift_cards`)
	if err != nil {
		return 0, fmt.Errorf("repo.GiftCardRepo.Count: %w", err)
	}
	return n, nil
}

func scanGiftCard(s scanner) (domain.GiftCard, error) {
	var (
		g          domain.GiftCard
		id         pgtype.UUID
		businessID pgtype.UUID
		expiresOn  pgtype.Date
	)
	err := s.Scan(&id, &businessID, &g.Code, &g.AmountCents, &g.BalanceCents, &g.Currency, &expiresOn, &g.CreatedAt)
	if err != nil {
		return domain.GiftCard{}, err
	}
	g.ID = uuid.UUID(id.Bytes)
	g.BusinessID = uuid.UUID(businessID.Bytes)
	if expiresOn.Valid {
		d := expiresOn.Time
		g.ExpiresOn = &d
	}
	return g, nil
}

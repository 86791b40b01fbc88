package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

const (
	// MaxGiftCardCents is the largest amount a single card may carry (10,000.00).
	MaxGiftCardCents = 1_000_000

	// DefaultCurrency applies when a card is created without one.
	DefaultCurrency = "USD"

	// codeAlphabet omits 0, O, 1 and I. Its length divides 256, so a random
	// byte maps onto it without bias.
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeGroups   = 3
	codeGroupLen = 4

	codeAttempts = 3
)

var (
	amountPattern   = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// GiftCardInput is the admin's request to issue a card.
type GiftCardInput struct {
	BusinessID uuid.UUID
	Amount     string
	Currency   string
	ExpiresOn  *time.Time
}

// GiftCardService implements issuing, listing and redeeming gift cards.
type GiftCardService struct {
	cards      repo.GiftCardRepo
	businesses repo.BusinessRepo
	now        func() time.Time
	newCode    func() (string, error)
}

// NewGiftCardService constructs a GiftCardService backed by the provided repos.
func NewGiftCardService(cards repo.GiftCardRepo, businesses repo.BusinessRepo) *GiftCardService {
	return &GiftCardService{cards: cards, businesses: businesses, now: time.Now, newCode: NewGiftCardCode}
}

// WithClock replaces the time source. Tests only.
func (s *GiftCardService) WithClock(now func() time.Time) *GiftCardService {
	s.now = now
	return s
}

// WithCodeSource replaces the code generator. Tests only.
func (s *GiftCardService) WithCodeSource(newCode func() (string, error)) *GiftCardService {
	s.newCode = newCode
	return s
}

// Create validates in and issues a card with a freshly generated code.
// A code collision is retried a few times before giving up.
func (s *GiftCardService) Create(ctx context.Context, in GiftCardInput) (domain.GiftCard, error) {
	cents, err := ParseAmount(in.Amount)
	if err != nil {
		return domain.GiftCard{}, err
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if !currencyPattern.MatchString(currency) {
		return domain.GiftCard{}, fmt.Errorf("%w: currency must be a three-letter code", domain.ErrValidation)
	}
	if in.ExpiresOn != nil && in.ExpiresOn.Before(startOfDay(s.now().UTC())) {
		return domain.GiftCard{}, fmt.Errorf("%w: expires_on must not be in the past", domain.ErrValidation)
	}
	if _, err := s.businesses.GetByID(ctx, in.BusinessID); err != nil {
		return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.Create: business: %w", err)
	}

	card := domain.GiftCard{
		BusinessID:  in.BusinessID,
		AmountCents: cents,
		Currency:    currency,
		ExpiresOn:   in.ExpiresOn,
	}
	for range codeAttempts {
		if card.Code, err = s.newCode(); err != nil {
			return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.Create: code: %w", err)
		}
		result, err := s.cards.Create(ctx, card)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.Create: %w", err)
		}
		return result, nil
	}
	return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.Create: no unique code after %d attempts", codeAttempts)
}

func (s *GiftCardService) GetByID(ctx context.Context, id uuid.UUID) (domain.GiftCard, error) {
	result, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.GetByID: %w", err)
	}
	return result, nil
}

// List returns cards, restricted to one business when businessID is non-nil.
func (s *GiftCardService) List(ctx context.Context, businessID *uuid.UUID) ([]domain.GiftCard, error) {
	out, err := s.cards.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("service.GiftCardService.List: %w", err)
	}
	if out == nil {
		return []domain.GiftCard{}, nil
	}
	return out, nil
}

func (s *GiftCardService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.GiftCardService.Delete: %w", err)
	}
	return nil
}

// Redeem subtracts amount from the card's balance.
// Returns domain.ErrExpired for expired cards and domain.ErrValidation when
// amount is malformed or exceeds the balance.
func (s *GiftCardService) Redeem(ctx context.Context, id uuid.UUID, amount string) (domain.GiftCard, error) {
	cents, err := ParseAmount(amount)
	if err != nil {
		return domain.GiftCard{}, err
	}
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.Redeem: %w", err)
	}
	if card.Expired(s.now()) {
		return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.Redeem: %w: gift card has expired", domain.ErrExpired)
	}
	if cents > card.BalanceCents {
		return domain.GiftCard{}, fmt.Errorf("%w: amount exceeds the remaining balance", domain.ErrValidation)
	}
	result, err := s.cards.Redeem(ctx, id, cents)
	if err != nil {
		return domain.GiftCard{}, fmt.Errorf("service.GiftCardService.Redeem: %w", err)
	}
	return result, nil
}

// ParseAmount converts a decimal string such as "25" or "25.50" to cents.
// The amount must be positive, have at most two decimals and not exceed
// MaxGiftCardCents.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: amount must be a number with at most two decimals", domain.ErrValidation)
	}
	whole, frac, _ := strings.Cut(s, ".")
	whole = strings.TrimLeft(whole, "0")
	if len(whole) > 5 {
		return 0, fmt.Errorf("%w: amount must not exceed 10000.00", domain.ErrValidation)
	}
	var cents int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: amount is not a number", domain.ErrValidation)
		}
		cents = n * 100
	}
	if frac != "" {
		if len(frac) == 1 {
			frac += "0"
		}
		n, _ := strconv.ParseInt(frac, 10, 64)
		cents += n
	}
	if cents <= 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if cents > MaxGiftCardCents {
		return 0, fmt.Errorf("%w: amount must not exceed 10000.00", domain.ErrValidation)
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two places.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// NewGiftCardCode returns a random code of the form XXXX-XXXX-XXXX.
func NewGiftCardCode() (string, error) {
	b := make([]byte, codeGroups*codeGroupLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, v := range b {
		if i > 0 && i%codeGroupLen == 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(codeAlphabet[int(v)%len(codeAlphabet)])
	}
	return sb.String(), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
	"github.com/pkordes/guidebook/internal/repo"
)

// MinPasswordLength is the shortest password sign-up accepts.
const MinPasswordLength = 8

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// AuthService implements sign-up, sign-in, sign-out and session lookup.
// Sessions are database rows addressed by an opaque random token.
type AuthService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService constructs an AuthService issuing sessions that live for ttl.
func NewAuthService(users repo.UserRepo, sessions repo.SessionRepo, ttl time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, ttl: ttl, now: time.Now}
}

// SignUp registers a user and signs them in.
// Returns domain.ErrValidation for bad input and domain.ErrConflict if the
// email is already registered.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (auth.Session, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if err := validateSignUp(email, password, name); err != nil {
		return auth.Session{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: hash: %w", err)
	}
	user, err := s.users.Create(ctx, domain.User{Email: email, Name: name, PasswordHash: hash, Role: domain.RoleUser})
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignUp: %w", err)
	}
	return s.startSession(ctx, user)
}

// SignIn checks the credentials and opens a new session.
// Returns domain.ErrInvalidCredentials whether the email is unknown or the
// password is wrong.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignIn: %w", domain.ErrInvalidCredentials)
	}
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignIn: %w", err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return auth.Session{}, fmt.Errorf("service.AuthService.SignIn: %w", domain.ErrInvalidCredentials)
	}
	return s.startSession(ctx, user)
}

// SignOut deletes the session row. Unknown tokens are ignored.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("service.AuthService.SignOut: %w", err)
	}
	return nil
}

// SessionUser resolves a token to its signed-in user.
// Returns domain.ErrUnauthenticated for malformed, unknown or expired tokens.
func (s *AuthService) SessionUser(ctx context.Context, token string) (auth.Session, error) {
	if !auth.ValidToken(token) {
		return auth.Session{}, fmt.Errorf("service.AuthService.SessionUser: %w", domain.ErrUnauthenticated)
	}
	sess, err := s.sessions.Get(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return auth.Session{}, fmt.Errorf("service.AuthService.SessionUser: %w", domain.ErrUnauthenticated)
	}
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SessionUser: %w", err)
	}
	user, err := s.users.GetByID(ctx, sess.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return auth.Session{}, fmt.Errorf("service.AuthService.SessionUser: %w", domain.ErrUnauthenticated)
	}
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService.SessionUser: %w", err)
	}
	return auth.Session{Token: token, User: user, ExpiresAt: sess.ExpiresAt}, nil
}

// PurgeExpired deletes every session past its expiry and reports how many went.
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.AuthService.PurgeExpired: %w", err)
	}
	return n, nil
}

func (s *AuthService) startSession(ctx context.Context, user domain.User) (auth.Session, error) {
	token, err := auth.NewToken()
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService: new token: %w", err)
	}
	sess, err := s.sessions.Create(ctx, domain.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.ttl),
	})
	if err != nil {
		return auth.Session{}, fmt.Errorf("service.AuthService: create session: %w", err)
	}
	return auth.Session{Token: sess.Token, User: user, ExpiresAt: sess.ExpiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignUp(email, password, name string) error {
	if !validEmail(email) {
		return fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)
	}
	if len(password) > MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, MaxPasswordBytes)
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}

// validEmail accepts a bare address only, no display name.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

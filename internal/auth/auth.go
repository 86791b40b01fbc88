// Package auth holds the request-scoped session handle and the primitives
// (password hashing, opaque tokens) the sign-in flow is built from.
//
// There is no package-level current user. The authenticator middleware
// resolves a session once per request and attaches it to the request
// context with WithSession; handlers read it back with FromContext.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/guidebook/internal/domain"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session"

// TokenLength is the number of random bytes in a session or share token
// before hex encoding.
const TokenLength = 32

const bcryptCost = 12

// Session is the signed-in identity of one request.
type Session struct {
	Token     string
	User      domain.User
	ExpiresAt time.Time
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session attached to ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewToken returns a fresh hex-encoded random token of TokenLength bytes.
func NewToken() (string, error) {
	b := make([]byte, TokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ValidToken reports whether s has the shape NewToken produces.
// Used to reject garbage before it reaches the database.
func ValidToken(s string) bool {
	if len(s) != TokenLength*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the privilege level of a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Session is a server-side sign-in record addressed by an opaque token.
type Session struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// UserPreference holds per-user defaults. Empty strings mean "no preference".
type UserPreference struct {
	UserID          uuid.UUID
	Language        string
	DefaultCategory string
	DefaultRegion   string
	DefaultCountry  string
	UpdatedAt       time.Time
}

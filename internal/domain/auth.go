// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// User represents a credential-store record. PasswordHash is a one-way
// salted bcrypt hash; the plaintext password is never stored or logged.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the authenticated subject carried by a verified session token.
type Identity struct {
	Email string
	Admin bool
}

// UserRepository defines the port for credential persistence operations.
// Lookups return (nil, nil) when no record matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateEmail(ctx context.Context, oldEmail, newEmail string) error
}

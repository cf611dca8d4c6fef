// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the email is unknown so that login cost
// stays uniform and does not reveal whether the account exists.
var dummyHash = []byte("$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW")

// AuthService verifies credentials against the credential store and mints
// signed, time-limited session tokens. Tokens are stateless: validity is
// determined entirely by signature and expiry.
type AuthService struct {
	users  domain.UserRepository
	secret []byte
	ttl    time.Duration
	cost   int
}

// NewAuthService creates a new authentication service. cost is the bcrypt
// work factor used for all hashing performed by the service.
func NewAuthService(users domain.UserRepository, secret []byte, ttl time.Duration, cost int) *AuthService {
	return &AuthService{
		users:  users,
		secret: secret,
		ttl:    ttl,
		cost:   cost,
	}
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin"`
}

// Login authenticates a user and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return signToken(s.secret, user.Email, true, time.Now(), s.ttl)
}

// Verify validates a presented session token and returns the identity it
// carries. Expired tokens fail with ErrTokenExpired; anything else wrong with
// the token fails with ErrTokenInvalid.
func (s *AuthService) Verify(token string) (domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Identity{}, ErrTokenInvalid
	}

	return domain.Identity{Email: claims.Subject, Admin: claims.Admin}, nil
}

// EnsureAdminUser guarantees that a credential-store record exists for the
// configured admin email with the configured password. Absent record: create.
// Present with matching password: no write. Present with different password:
// overwrite: the configured password is the source of truth, so a manually
// changed stored hash reverts on the next start. Safe to call on every cold
// start; concurrent invocations converge on the same state.
func (s *AuthService) EnsureAdminUser(ctx context.Context, email, password string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("lookup admin user: %w", err)
	}

	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		if _, err := s.users.Create(ctx, email, string(hash)); err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}
		return nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, email, string(hash)); err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	return nil
}

// UpdateProfile changes the email and/or password of the authenticated user.
// Password changes are re-hashed; email changes keep the at-most-one-record
// invariant. Returns the updated record.
func (s *AuthService) UpdateProfile(ctx context.Context, current domain.Identity, newEmail, newPassword string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, current.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
		if err != nil {
			return nil, err
		}
		if err := s.users.UpdatePassword(ctx, user.Email, string(hash)); err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	newEmail = strings.TrimSpace(newEmail)
	if newEmail != "" && newEmail != user.Email {
		existing, err := s.users.GetByEmail(ctx, newEmail)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email already in use", ErrInvalidInput)
		}
		if err := s.users.UpdateEmail(ctx, user.Email, newEmail); err != nil {
			return nil, err
		}
		user.Email = newEmail
	}

	return user, nil
}

// LookupByEmail returns the identity for an existing credential-store record,
// or ErrForbidden when no record matches. Used by the SSO callback: single
// sign-on never provisions accounts.
func (s *AuthService) LookupByEmail(ctx context.Context, email string) (domain.Identity, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.Identity{}, err
	}
	if user == nil {
		return domain.Identity{}, ErrForbidden
	}
	return domain.Identity{Email: user.Email, Admin: true}, nil
}

// MintToken signs a session token for an already authenticated identity
// (e.g. after a successful SSO exchange).
func (s *AuthService) MintToken(ident domain.Identity) (string, error) {
	return signToken(s.secret, ident.Email, ident.Admin, time.Now(), s.ttl)
}

func signToken(secret []byte, email string, admin bool, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Admin: admin,
	})
	return token.SignedString(secret)
}

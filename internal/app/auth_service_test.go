package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/internal/adapter/memory"
	"portfolio/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	createFn         func(ctx context.Context, email, passwordHash string) (*domain.User, error)
	updatePasswordFn func(ctx context.Context, email, passwordHash string) error
	updateEmailFn    func(ctx context.Context, oldEmail, newEmail string) error
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, email, passwordHash)
	}
	return &domain.User{ID: "1", Email: email, PasswordHash: passwordHash}, nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, email, passwordHash)
	}
	return nil
}

func (m *mockUserRepo) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	if m.updateEmailFn != nil {
		return m.updateEmailFn(ctx, oldEmail, newEmail)
	}
	return nil
}

func newTestService(users domain.UserRepository) *AuthService {
	return NewAuthService(users, []byte("test-secret"), time.Hour, bcrypt.MinCost)
}

func TestAuthService_LoginAndVerify(t *testing.T) {
	ctx := context.Background()
	password := "testpass123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "1", Email: "a@x.com", PasswordHash: string(hash)}, nil
		},
	}

	svc := newTestService(users)
	token, err := svc.Login(ctx, "a@x.com", password)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty string")
	}

	ident, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ident.Email != "a@x.com" {
		t.Errorf("expected identity a@x.com, got %q", ident.Email)
	}
	if !ident.Admin {
		t.Error("expected admin capability")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "1", Email: "a@x.com", PasswordHash: string(hash)}, nil
		},
	}

	svc := newTestService(users)
	token, err := svc.Login(context.Background(), "a@x.com", "wrongpass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Errorf("expected no token, got %q", token)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestService(&mockUserRepo{})
	_, err := svc.Login(context.Background(), "nobody@x.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	secret := []byte("test-secret")
	// Minted two hours in the past with a one-hour validity window.
	token, err := signToken(secret, "a@x.com", true, time.Now().Add(-2*time.Hour), time.Hour)
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	svc := NewAuthService(&mockUserRepo{}, secret, time.Hour, bcrypt.MinCost)
	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_Verify_BadSignature(t *testing.T) {
	token, err := signToken([]byte("other-secret"), "a@x.com", true, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}

	svc := newTestService(&mockUserRepo{})
	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_Verify_Garbage(t *testing.T) {
	svc := newTestService(&mockUserRepo{})
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestEnsureAdminUser_CreatesWhenAbsent(t *testing.T) {
	var createdHash string
	creates := 0
	users := &mockUserRepo{
		createFn: func(ctx context.Context, email, passwordHash string) (*domain.User, error) {
			creates++
			createdHash = passwordHash
			return &domain.User{ID: "1", Email: email, PasswordHash: passwordHash}, nil
		},
	}

	svc := newTestService(users)
	if err := svc.EnsureAdminUser(context.Background(), "a@x.com", "P1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if creates != 1 {
		t.Fatalf("expected one create, got %d", creates)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(createdHash), []byte("P1")); err != nil {
		t.Error("stored hash does not match the configured password")
	}
}

func TestEnsureAdminUser_NoWriteWhenMatch(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("P1"), bcrypt.MinCost)
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "1", Email: "a@x.com", PasswordHash: string(hash)}, nil
		},
		createFn: func(ctx context.Context, email, passwordHash string) (*domain.User, error) {
			t.Error("create must not be called when the record already matches")
			return nil, nil
		},
		updatePasswordFn: func(ctx context.Context, email, passwordHash string) error {
			t.Error("no write may occur when the stored hash already matches")
			return nil
		},
	}

	svc := newTestService(users)
	for range 2 {
		if err := svc.EnsureAdminUser(context.Background(), "a@x.com", "P1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
}

// Concrete drift scenario: first boot creates the record for P1, an operator
// resets the stored hash to P2, and the next boot restores P1. The
// configured password is the source of truth.
func TestEnsureAdminUser_OverwritesOnDrift(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := newTestService(store)

	if err := svc.EnsureAdminUser(ctx, "a@x.com", "P1"); err != nil {
		t.Fatalf("first boot: %v", err)
	}

	// Operator manually changes the stored password out of band.
	driftHash, _ := bcrypt.GenerateFromPassword([]byte("P2"), bcrypt.MinCost)
	if err := store.UpdatePassword(ctx, "a@x.com", string(driftHash)); err != nil {
		t.Fatalf("drift: %v", err)
	}

	if err := svc.EnsureAdminUser(ctx, "a@x.com", "P1"); err != nil {
		t.Fatalf("second boot: %v", err)
	}

	user, err := store.GetByEmail(ctx, "a@x.com")
	if err != nil || user == nil {
		t.Fatalf("lookup after second boot: user=%v err=%v", user, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("P1")); err != nil {
		t.Error("stored hash was not restored to the configured password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("P2")) == nil {
		t.Error("drifted password still matches after provisioning")
	}
}

func TestEnsureAdminUser_PropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("connection reset")
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, storeErr
		},
	}

	svc := newTestService(users)
	if err := svc.EnsureAdminUser(context.Background(), "a@x.com", "P1"); !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	oldHash, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
	var newHash string
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email == "a@x.com" {
				return &domain.User{ID: "1", Email: "a@x.com", PasswordHash: string(oldHash)}, nil
			}
			return nil, nil
		},
		updatePasswordFn: func(ctx context.Context, email, passwordHash string) error {
			newHash = passwordHash
			return nil
		},
	}

	svc := newTestService(users)
	ident := domain.Identity{Email: "a@x.com", Admin: true}
	user, err := svc.UpdateProfile(context.Background(), ident, "", "newpass")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if newHash == "" {
		t.Fatal("expected password to be re-hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpass")); err != nil {
		t.Error("new hash does not match the new password")
	}
	if user.PasswordHash != newHash {
		t.Error("returned record does not carry the new hash")
	}
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.MinCost)
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "1", Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := newTestService(users)
	ident := domain.Identity{Email: "a@x.com", Admin: true}
	_, err := svc.UpdateProfile(context.Background(), ident, "taken@x.com", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLookupByEmail_UnknownIsForbidden(t *testing.T) {
	svc := newTestService(&mockUserRepo{})
	if _, err := svc.LookupByEmail(context.Background(), "stranger@x.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

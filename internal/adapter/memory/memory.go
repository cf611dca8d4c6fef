// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"portfolio/internal/domain"
)

// DB implements in-memory storage shared by the repository wrappers.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	projects []domain.Project
	messages []domain.ContactMessage

	idCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProjectRepository = (*ProjectRepo)(nil)
var _ domain.ContactRepository = (*ContactRepo)(nil)

// nextID must be called with db.mu held.
func (db *DB) nextID() string {
	db.idCounter++
	return strconv.FormatInt(db.idCounter, 10)
}

// --- UserRepository ---

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create creates a new user record.
func (db *DB) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, fmt.Errorf("duplicate email %q", email)
		}
	}

	u := &domain.User{
		ID:           db.nextID(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// UpdatePassword overwrites the stored password hash for email.
func (db *DB) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return fmt.Errorf("no user with email %q", email)
}

// UpdateEmail changes the record key from oldEmail to newEmail.
func (db *DB) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == newEmail {
			return fmt.Errorf("duplicate email %q", newEmail)
		}
	}
	for _, u := range db.users {
		if u.Email == oldEmail {
			u.Email = newEmail
			return nil
		}
	}
	return fmt.Errorf("no user with email %q", oldEmail)
}

// --- ProjectRepository ---

// ProjectRepo implements project repository operations on DB.
type ProjectRepo struct {
	db *DB
}

// NewProjectRepo wraps a DB as a ProjectRepository.
func NewProjectRepo(db *DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.Project, len(r.db.projects))
	copy(result, r.db.projects)

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Create stores a new project.
func (r *ProjectRepo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p.ID = r.db.nextID()
	p.CreatedAt = time.Now().UTC()
	r.db.projects = append(r.db.projects, p)
	return &p, nil
}

// Delete removes a project by id, reporting whether it existed.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, p := range r.db.projects {
		if p.ID == id {
			r.db.projects = append(r.db.projects[:i], r.db.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- ContactRepository ---

// ContactRepo implements contact-message repository operations on DB.
type ContactRepo struct {
	db *DB
}

// NewContactRepo wraps a DB as a ContactRepository.
func NewContactRepo(db *DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Create stores a contact-form submission.
func (r *ContactRepo) Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m.ID = r.db.nextID()
	m.CreatedAt = time.Now().UTC()
	r.db.messages = append(r.db.messages, m)
	return &m, nil
}

// List returns the most recent messages, newest first.
func (r *ContactRepo) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.ContactMessage, len(r.db.messages))
	copy(result, r.db.messages)

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

package app

import (
	"context"
	"errors"
	"testing"

	"portfolio/internal/domain"
)

type mockProjectRepo struct {
	listFn   func(ctx context.Context) ([]domain.Project, error)
	createFn func(ctx context.Context, p domain.Project) (*domain.Project, error)
	deleteFn func(ctx context.Context, id string) (bool, error)
}

func (m *mockProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []domain.Project{}, nil
}

func (m *mockProjectRepo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	p.ID = "1"
	return &p, nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

func TestProjectService_Create_RequiresTitle(t *testing.T) {
	svc := NewProjectService(&mockProjectRepo{})
	_, err := svc.Create(context.Background(), domain.Project{Title: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProjectService_Create_NormalizesFields(t *testing.T) {
	var stored domain.Project
	repo := &mockProjectRepo{
		createFn: func(ctx context.Context, p domain.Project) (*domain.Project, error) {
			stored = p
			p.ID = "1"
			return &p, nil
		},
	}

	svc := NewProjectService(repo)
	created, err := svc.Create(context.Background(), domain.Project{Title: "  Portfolio  "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored.Title != "Portfolio" {
		t.Errorf("expected trimmed title, got %q", stored.Title)
	}
	if stored.Technologies == nil {
		t.Error("expected technologies to default to an empty slice")
	}
	if created.ID == "" {
		t.Error("expected created project to carry an id")
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	repo := &mockProjectRepo{
		deleteFn: func(ctx context.Context, id string) (bool, error) {
			return false, nil
		},
	}

	svc := NewProjectService(repo)
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectService_Delete_Existing(t *testing.T) {
	svc := NewProjectService(&mockProjectRepo{})
	if err := svc.Delete(context.Background(), "1"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

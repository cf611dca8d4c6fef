package app

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/domain"
)

// ProjectService handles portfolio project listing and administration.
type ProjectService struct {
	projects domain.ProjectRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projects domain.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// Create validates and stores a new project.
func (s *ProjectService) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if p.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return s.projects.Create(ctx, p)
}

// Delete removes a project by id. Returns ErrNotFound when no such project
// exists.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	deleted, err := s.projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

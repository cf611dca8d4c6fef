package domain

import (
	"context"
	"time"
)

// Project is a portfolio entry shown on the public projects page.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	ImageURL     string    `json:"imageUrl"`
	LiveURL      string    `json:"liveUrl"`
	GitHubURL    string    `json:"githubUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProjectRepository defines the port for project persistence operations.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, p Project) (*Project, error)
	// Delete reports whether a project with the given id existed.
	Delete(ctx context.Context, id string) (bool, error)
}

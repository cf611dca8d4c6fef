package domain

import (
	"context"
	"time"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRepository defines the port for contact-message persistence.
type ContactRepository interface {
	Create(ctx context.Context, m ContactMessage) (*ContactMessage, error)
	List(ctx context.Context, limit int) ([]ContactMessage, error)
}

package app

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/domain"
)

// ContactService handles contact-form submissions.
type ContactService struct {
	messages domain.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(messages domain.ContactRepository) *ContactService {
	return &ContactService{messages: messages}
}

// Submit validates and stores a contact-form submission.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is not a valid address", ErrInvalidInput)
	}

	return s.messages.Create(ctx, domain.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
}

// ListRecent returns the most recent contact messages for the admin dashboard.
func (s *ContactService) ListRecent(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx, limit)
}

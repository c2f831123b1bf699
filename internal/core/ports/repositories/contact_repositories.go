package repositories

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
)

// ContactFilter narrows a contact listing. A nil Type lists every contact.
type ContactFilter struct {
	Type   *domain.ContactType
	Limit  int
	Offset int
}

type ContactReader interface {
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, filter ContactFilter) ([]domain.Contact, error)
}

type ContactWriter interface {
	SaveContact(ctx context.Context, contact domain.Contact) error
	UpdateContact(ctx context.Context, contact domain.Contact) error
	DeleteContact(ctx context.Context, contactID string) error
}

// ContactRepositoryFacade combines all contact-related repository interfaces
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}

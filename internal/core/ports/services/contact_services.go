package services

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
)

type ContactSvcFacade interface {
	CreateContact(ctx context.Context, req dto.CreateContactRequest, userID string) (*domain.Contact, error)
	GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, params dto.ListContactsParams) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, contactID string, req dto.UpdateContactRequest, userID string) (*domain.Contact, error)
	DeleteContact(ctx context.Context, contactID string) error
}

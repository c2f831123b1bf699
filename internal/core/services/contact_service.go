package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/google/uuid"
)

type contactService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates a new vendor and customer service
func NewContactService(repo portsrepo.ContactRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{BaseService: newBaseService(), contactRepo: repo}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) CreateContact(ctx context.Context, req dto.CreateContactRequest, userID string) (*domain.Contact, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	contact := domain.Contact{
		ContactID:   uuid.NewString(),
		Name:        req.Name,
		ContactType: req.ContactType,
		Email:       req.Email,
		Phone:       req.Phone,
		TaxNumber:   req.TaxNumber,
		Address:     req.Address,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save contact")
		return nil, err
	}

	return &contact, nil
}

func (s *contactService) GetContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find contact", slog.String("contact_id", contactID))
		return nil, err
	}
	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context, params dto.ListContactsParams) ([]domain.Contact, error) {
	filter := portsrepo.ContactFilter{Limit: params.Limit, Offset: params.Offset}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if params.ContactType != "" {
		t := domain.ContactType(params.ContactType)
		filter.Type = &t
	}

	contacts, err := s.contactRepo.ListContacts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts")
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if contacts == nil {
		return []domain.Contact{}, nil
	}
	return contacts, nil
}

func (s *contactService) UpdateContact(ctx context.Context, contactID string, req dto.UpdateContactRequest, userID string) (*domain.Contact, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find contact for update", slog.String("contact_id", contactID))
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.ContactType != nil {
		contact.ContactType = domain.ContactType(*req.ContactType)
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.TaxNumber != nil {
		contact.TaxNumber = *req.TaxNumber
	}
	if req.Address != nil {
		contact.Address = *req.Address
	}
	contact.LastUpdatedAt = s.Now()
	contact.LastUpdatedBy = userID

	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update contact", slog.String("contact_id", contactID))
		return nil, err
	}
	return contact, nil
}

// DeleteContact removes a contact no document, payment or ledger entry refers to.
func (s *contactService) DeleteContact(ctx context.Context, contactID string) error {
	if err := s.contactRepo.DeleteContact(ctx, contactID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete contact", slog.String("contact_id", contactID))
		return err
	}
	return nil
}

package dto

import (
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
)

type CreateContactRequest struct {
	Name        string             `json:"name" binding:"required,max=255"`
	ContactType domain.ContactType `json:"contactType" binding:"required,oneof=VENDOR CUSTOMER BOTH"`
	Email       string             `json:"email" binding:"omitempty,email,max=255"`
	Phone       string             `json:"phone" binding:"max=50"`
	TaxNumber   string             `json:"taxNumber" binding:"max=50"`
	Address     string             `json:"address" binding:"max=1000"`
}

type UpdateContactRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	ContactType *string `json:"contactType" binding:"omitempty,oneof=VENDOR CUSTOMER BOTH"`
	Email       *string `json:"email" binding:"omitempty,email,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	TaxNumber   *string `json:"taxNumber" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=1000"`
}

type ListContactsParams struct {
	ContactType string `form:"type" binding:"omitempty,oneof=VENDOR CUSTOMER BOTH"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

type ContactResponse struct {
	ContactID     string             `json:"contactID"`
	Name          string             `json:"name"`
	ContactType   domain.ContactType `json:"contactType"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	TaxNumber     string             `json:"taxNumber"`
	Address       string             `json:"address"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:     c.ContactID,
		Name:          c.Name,
		ContactType:   c.ContactType,
		Email:         c.Email,
		Phone:         c.Phone,
		TaxNumber:     c.TaxNumber,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

func ToListContactsResponse(contacts []domain.Contact) ListContactsResponse {
	out := ListContactsResponse{Contacts: make([]ContactResponse, len(contacts))}
	for i := range contacts {
		out.Contacts[i] = ToContactResponse(&contacts[i])
	}
	return out
}

package services

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
)

type TaxSvcFacade interface {
	CreateTax(ctx context.Context, req dto.CreateTaxRequest, userID string) (*domain.Tax, error)
	GetTaxByID(ctx context.Context, taxID string) (*domain.Tax, error)
	ListTaxes(ctx context.Context) ([]domain.Tax, error)
	DeleteTax(ctx context.Context, taxID string) error
}

package repositories

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
)

type TaxReader interface {
	FindTaxByID(ctx context.Context, taxID string) (*domain.Tax, error)

	// FindTaxesByIDs retrieves multiple taxes keyed by ID. Unknown IDs are absent from the map.
	FindTaxesByIDs(ctx context.Context, taxIDs []string) (map[string]domain.Tax, error)

	ListTaxes(ctx context.Context) ([]domain.Tax, error)
}

type TaxWriter interface {
	SaveTax(ctx context.Context, tax domain.Tax) error
	DeleteTax(ctx context.Context, taxID string) error
}

// TaxRepositoryFacade combines all tax-related repository interfaces
type TaxRepositoryFacade interface {
	TaxReader
	TaxWriter
}

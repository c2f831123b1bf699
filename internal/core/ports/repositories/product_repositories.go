package repositories

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
)

// ProductFilter narrows a product listing. Search matches name or SKU. A Limit of zero lists everything.
type ProductFilter struct {
	Search string
	Limit  int
	Offset int
}

// ProductReader defines read operations for product data
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products keyed by ID. Unknown IDs are absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// HSNCodeRepository stores the harmonized classification codes products refer to.
type HSNCodeRepository interface {
	SaveHSNCode(ctx context.Context, code domain.HSNCode) error
	ListHSNCodes(ctx context.Context) ([]domain.HSNCode, error)
	DeleteHSNCode(ctx context.Context, code string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	HSNCodeRepository
}

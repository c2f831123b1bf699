package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
)

// StockRepository stores stock movements.
type StockRepository interface {
	SaveMovement(ctx context.Context, movement domain.StockMovement) error

	// ListMovements lists movements newest first, optionally for one product.
	ListMovements(ctx context.Context, productID *string, limit, offset int) ([]domain.StockMovement, error)

	// ListMovementsUpTo lists every movement dated on or before asOf, optionally for one product.
	ListMovementsUpTo(ctx context.Context, asOf time.Time, productID *string) ([]domain.StockMovement, error)
}

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

type stockService struct {
	BaseService
	stockRepo   portsrepo.StockRepository
	productRepo portsrepo.ProductReader
}

// NewStockService creates the stock adjustment service
func NewStockService(repo portsrepo.StockRepository, products portsrepo.ProductReader) portssvc.StockSvcFacade {
	return &stockService{BaseService: newBaseService(), stockRepo: repo, productRepo: products}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// AdjustStock records a signed ADJUSTMENT movement for stock counts, damage or write-offs.
func (s *stockService) AdjustStock(ctx context.Context, req dto.StockAdjustmentRequest, userID string) (*domain.StockMovement, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("movementDate", req.MovementDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindProductByID(ctx, req.ProductID); err != nil {
		s.LogUnexpected(ctx, err, "Product lookup failed", slog.String("product_id", req.ProductID))
		return nil, err
	}

	movementID := uuid.NewString()
	movement := domain.StockMovement{
		MovementID:    movementID,
		ProductID:     req.ProductID,
		MovementType:  domain.StockAdjustment,
		Quantity:      *req.Quantity,
		MovementDate:  date,
		ReferenceType: domain.RefStockAdjustment,
		ReferenceID:   movementID,
		Notes:         req.Notes,
		CreatedAt:     s.Now(),
		CreatedBy:     userID,
	}

	if err := s.stockRepo.SaveMovement(ctx, movement); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save stock adjustment", slog.String("product_id", req.ProductID))
		return nil, err
	}

	return &movement, nil
}

func (s *stockService) ListMovements(ctx context.Context, params dto.ListStockMovementsParams) ([]domain.StockMovement, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	var productID *string
	if params.ProductID != "" {
		productID = &params.ProductID
	}

	movements, err := s.stockRepo.ListMovements(ctx, productID, limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock movements")
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	if movements == nil {
		return []domain.StockMovement{}, nil
	}
	return movements, nil
}

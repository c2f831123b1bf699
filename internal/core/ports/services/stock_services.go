package services

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
)

type StockSvcFacade interface {
	AdjustStock(ctx context.Context, req dto.StockAdjustmentRequest, userID string) (*domain.StockMovement, error)
	ListMovements(ctx context.Context, params dto.ListStockMovementsParams) ([]domain.StockMovement, error)
}

package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/core/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()
	productID := uuid.NewString()
	stock := new(MockStockRepository)
	products := new(MockProductRepository)
	products.On("FindProductByID", ctx, productID).Return(&domain.Product{ProductID: productID}, nil).Once()
	stock.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.StockMovement) bool {
		return m.MovementType == domain.StockAdjustment &&
			m.Quantity.Equal(d("-3")) &&
			m.ReferenceType == domain.RefStockAdjustment &&
			m.ReferenceID == m.MovementID
	})).Return(nil).Once()

	svc := services.NewStockService(stock, products)
	movement, err := svc.AdjustStock(ctx, dto.StockAdjustmentRequest{
		ProductID:    productID,
		Quantity:     dp("-3"),
		MovementDate: "2025-03-15",
		Notes:        "damaged in transit",
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "2025-03-15", movement.MovementDate.Format(dto.DateFormat))
	stock.AssertExpectations(t)
}

func TestAdjustStock_Rejected(t *testing.T) {
	ctx := context.Background()
	productID := uuid.NewString()
	stock := new(MockStockRepository)
	products := new(MockProductRepository)
	svc := services.NewStockService(stock, products)

	_, err := svc.AdjustStock(ctx, dto.StockAdjustmentRequest{ProductID: productID, Quantity: dp("0"), MovementDate: "2025-03-15"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	products.On("FindProductByID", ctx, productID).Return(nil, apperrors.NewNotFoundError("product", productID)).Once()
	_, err = svc.AdjustStock(ctx, dto.StockAdjustmentRequest{ProductID: productID, Quantity: dp("2"), MovementDate: "2025-03-15"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	stock.AssertNotCalled(t, "SaveMovement", mock.Anything, mock.Anything)
}

func TestListMovements_Defaults(t *testing.T) {
	ctx := context.Background()
	stock := new(MockStockRepository)
	stock.On("ListMovements", ctx, (*string)(nil), 50, 0).Return(nil, nil).Once()

	movements, err := services.NewStockService(stock, new(MockProductRepository)).ListMovements(ctx, dto.ListStockMovementsParams{})

	require.NoError(t, err)
	assert.NotNil(t, movements)
	stock.AssertExpectations(t)
}

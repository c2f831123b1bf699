package dto

import (
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockAdjustmentRequest corrects on-hand quantity. Quantity is signed.
type StockAdjustmentRequest struct {
	ProductID    string           `json:"productID" binding:"required,uuid"`
	Quantity     *decimal.Decimal `json:"quantity" binding:"required,decimal_nonzero,decimal_places=2"`
	MovementDate string           `json:"movementDate" binding:"required,datetime=2006-01-02"`
	Notes        string           `json:"notes" binding:"max=1000"`
}

type ListStockMovementsParams struct {
	ProductID string `form:"productId" binding:"omitempty,uuid"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
}

type StockMovementResponse struct {
	MovementID    string               `json:"movementID"`
	ProductID     string               `json:"productID"`
	MovementType  domain.MovementType  `json:"movementType"`
	Quantity      decimal.Decimal      `json:"quantity"`
	MovementDate  string               `json:"movementDate"`
	ReferenceType domain.ReferenceType `json:"referenceType"`
	ReferenceID   string               `json:"referenceID"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

type ListStockMovementsResponse struct {
	Movements []StockMovementResponse `json:"movements"`
}

func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		MovementID:    m.MovementID,
		ProductID:     m.ProductID,
		MovementType:  m.MovementType,
		Quantity:      m.Quantity,
		MovementDate:  m.MovementDate.Format(DateFormat),
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

func ToListStockMovementsResponse(movements []domain.StockMovement) ListStockMovementsResponse {
	out := ListStockMovementsResponse{Movements: make([]StockMovementResponse, len(movements))}
	for i := range movements {
		out.Movements[i] = ToStockMovementResponse(&movements[i])
	}
	return out
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	StockIn         MovementType = "IN"
	StockOut        MovementType = "OUT"
	StockAdjustment MovementType = "ADJUSTMENT" // signed quantity
)

// StockMovement records a change in on-hand quantity of a product.
type StockMovement struct {
	MovementID    string          `json:"movementID"`
	ProductID     string          `json:"productID"`
	MovementType  MovementType    `json:"movementType"`
	Quantity      decimal.Decimal `json:"quantity"`
	MovementDate  time.Time       `json:"movementDate"`
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

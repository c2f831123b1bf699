package dto

import (
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaxRequest defines a new tax. Percentage rates are additionally capped at 100 by the service.
type CreateTaxRequest struct {
	Name   string           `json:"name" binding:"required,max=100"`
	Rate   *decimal.Decimal `json:"rate" binding:"required,decimal_gte=0,decimal_places=2"`
	Method domain.TaxMethod `json:"method" binding:"required,oneof=PERCENTAGE FIXED_VALUE"`
}

type TaxResponse struct {
	TaxID     string           `json:"taxID"`
	Name      string           `json:"name"`
	Rate      decimal.Decimal  `json:"rate"`
	Method    domain.TaxMethod `json:"method"`
	CreatedAt time.Time        `json:"createdAt"`
	CreatedBy string           `json:"createdBy"`
}

type ListTaxesResponse struct {
	Taxes []TaxResponse `json:"taxes"`
}

func ToTaxResponse(t *domain.Tax) TaxResponse {
	return TaxResponse{
		TaxID:     t.TaxID,
		Name:      t.Name,
		Rate:      t.Rate,
		Method:    t.Method,
		CreatedAt: t.CreatedAt,
		CreatedBy: t.CreatedBy,
	}
}

func ToListTaxesResponse(taxes []domain.Tax) ListTaxesResponse {
	out := ListTaxesResponse{Taxes: make([]TaxResponse, len(taxes))}
	for i := range taxes {
		out.Taxes[i] = ToTaxResponse(&taxes[i])
	}
	return out
}

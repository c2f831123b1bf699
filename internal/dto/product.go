package dto

import (
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines a new product. Prices are per unit with at most two decimals.
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,max=255"`
	SKU           *string          `json:"sku" binding:"omitempty,min=1,max=64"`
	Unit          string           `json:"unit" binding:"max=20"`
	HSNCode       *string          `json:"hsnCode" binding:"omitempty,min=2,max=10"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" binding:"required,decimal_gte=0,decimal_places=2"`
	SalePrice     *decimal.Decimal `json:"salePrice" binding:"required,decimal_gte=0,decimal_places=2"`
	TaxID         *string          `json:"taxID" binding:"omitempty,uuid"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	SKU           *string          `json:"sku" binding:"omitempty,min=1,max=64"`
	Unit          *string          `json:"unit" binding:"omitempty,max=20"`
	HSNCode       *string          `json:"hsnCode" binding:"omitempty,min=2,max=10"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice" binding:"omitempty,decimal_gte=0,decimal_places=2"`
	SalePrice     *decimal.Decimal `json:"salePrice" binding:"omitempty,decimal_gte=0,decimal_places=2"`
	TaxID         *string          `json:"taxID" binding:"omitempty,uuid"`
	ClearTax      bool             `json:"clearTax"`
}

type ListProductsParams struct {
	Search string `form:"q" binding:"max=100"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	SKU           *string         `json:"sku"`
	Unit          string          `json:"unit"`
	HSNCode       *string         `json:"hsnCode"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	TaxID         *string         `json:"taxID"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		SKU:           p.SKU,
		Unit:          p.Unit,
		HSNCode:       p.HSNCode,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		TaxID:         p.TaxID,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	out := ListProductsResponse{Products: make([]ProductResponse, len(products))}
	for i := range products {
		out.Products[i] = ToProductResponse(&products[i])
	}
	return out
}

type CreateHSNCodeRequest struct {
	Code        string `json:"code" binding:"required,min=2,max=10,numeric"`
	Description string `json:"description" binding:"max=500"`
}

type HSNCodeResponse struct {
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

func ToHSNCodeResponse(h *domain.HSNCode) HSNCodeResponse {
	return HSNCodeResponse{
		Code:        h.Code,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		CreatedBy:   h.CreatedBy,
	}
}

func ToHSNCodeResponses(codes []domain.HSNCode) []HSNCodeResponse {
	out := make([]HSNCodeResponse, len(codes))
	for i := range codes {
		out[i] = ToHSNCodeResponse(&codes[i])
	}
	return out
}

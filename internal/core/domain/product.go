package domain

import "github.com/shopspring/decimal"

// Product is a stocked or billable item.
type Product struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	SKU           *string         `json:"sku,omitempty"`
	Unit          string          `json:"unit"`
	HSNCode       *string         `json:"hsnCode,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	TaxID         *string         `json:"taxID,omitempty"` // default tax applied to new lines
	AuditFields
}

// HSNCode is a harmonized commodity classification code.
type HSNCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	AuditFields
}

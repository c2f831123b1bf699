package models

import "github.com/shopspring/decimal"

type Contact struct {
	ContactID   string `db:"contact_id"`
	Name        string `db:"name"`
	ContactType string `db:"contact_type"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	TaxNumber   string `db:"tax_number"`
	Address     string `db:"address"`
	AuditFields
}

type Product struct {
	ProductID     string          `db:"product_id"`
	Name          string          `db:"name"`
	SKU           *string         `db:"sku"`
	Unit          string          `db:"unit"`
	HSNCode       *string         `db:"hsn_code"`
	PurchasePrice decimal.Decimal `db:"purchase_price"`
	SalePrice     decimal.Decimal `db:"sale_price"`
	TaxID         *string         `db:"tax_id"`
	AuditFields
}

type HSNCode struct {
	Code        string `db:"code"`
	Description string `db:"description"`
	AuditFields
}

type Tax struct {
	TaxID  string          `db:"tax_id"`
	Name   string          `db:"name"`
	Rate   decimal.Decimal `db:"rate"`
	Method string          `db:"method"`
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is a row of any of the four document tables; they share one column set.
type Document struct {
	DocumentID          string          `db:"document_id"`
	Number              string          `db:"number"`
	DocumentDate        time.Time       `db:"document_date"`
	DueDate             *time.Time      `db:"due_date"`
	ContactID           string          `db:"contact_id"`
	Notes               string          `db:"notes"`
	Status              string          `db:"status"`
	Subtotal            decimal.Decimal `db:"subtotal"`
	TaxAmount           decimal.Decimal `db:"tax_amount"`
	Total               decimal.Decimal `db:"total"`
	PaidAmount          decimal.Decimal `db:"paid_amount"`
	PaymentStatus       *string         `db:"payment_status"` // NULL for orders
	SourceDocumentID    *string         `db:"source_document_id"`
	ConvertedDocumentID *string         `db:"converted_document_id"`
	AuditFields
}

type LineItem struct {
	LineItemID  string          `db:"line_item_id"`
	DocumentID  string          `db:"document_id"`
	LineNo      int             `db:"line_no"`
	ProductID   string          `db:"product_id"`
	TaxID       *string         `db:"tax_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	Total       decimal.Decimal `db:"total"`
}

type Payment struct {
	PaymentID   string          `db:"payment_id"`
	DocumentID  string          `db:"document_id"`
	ContactID   string          `db:"contact_id"`
	PaymentDate time.Time       `db:"payment_date"`
	Method      string          `db:"method"`
	Amount      decimal.Decimal `db:"amount"`
	Reference   string          `db:"reference"`
	Notes       string          `db:"notes"`
	AuditFields
}

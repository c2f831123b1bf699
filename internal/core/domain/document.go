package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind identifies one of the four commercial document families.
type DocumentKind string

const (
	PurchaseOrder   DocumentKind = "PURCHASE_ORDER"
	SalesOrder      DocumentKind = "SALES_ORDER"
	VendorBill      DocumentKind = "VENDOR_BILL"
	CustomerInvoice DocumentKind = "CUSTOMER_INVOICE"
)

// IsOrder reports whether the kind is a purchase or sales order.
func (k DocumentKind) IsOrder() bool {
	return k == PurchaseOrder || k == SalesOrder
}

// IsPayable reports whether payments can be recorded against the kind.
func (k DocumentKind) IsPayable() bool {
	return k == VendorBill || k == CustomerInvoice
}

// IsSalesSide reports whether the counterparty is a customer.
func (k DocumentKind) IsSalesSide() bool {
	return k == SalesOrder || k == CustomerInvoice
}

// ConvertsTo returns the kind an order becomes when converted.
func (k DocumentKind) ConvertsTo() (DocumentKind, bool) {
	switch k {
	case SalesOrder:
		return CustomerInvoice, true
	case PurchaseOrder:
		return VendorBill, true
	}
	return "", false
}

// Series is the document number prefix for the kind.
func (k DocumentKind) Series() string {
	switch k {
	case PurchaseOrder:
		return "PO"
	case SalesOrder:
		return "SO"
	case VendorBill:
		return "BILL"
	case CustomerInvoice:
		return "INV"
	}
	return string(k)
}

// Valid reports whether k is a known kind.
func (k DocumentKind) Valid() bool {
	switch k {
	case PurchaseOrder, SalesOrder, VendorBill, CustomerInvoice:
		return true
	}
	return false
}

// DocumentStatus is the lifecycle state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "DRAFT"     // orders on creation
	StatusConverted DocumentStatus = "CONVERTED" // orders after conversion, terminal
	StatusIssued    DocumentStatus = "ISSUED"    // bills and invoices on creation
)

// PaymentStatus tracks settlement of a bill or invoice.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// LineItem is one row of a document. Its tax and total are fixed when the document is created.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"`
	DocumentID  string          `json:"documentID"`
	LineNo      int             `json:"lineNo"`
	ProductID   string          `json:"productID"`
	TaxID       *string         `json:"taxID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Total       decimal.Decimal `json:"total"`
}

// Amount is quantity times unit price, before tax.
func (l LineItem) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Document is a purchase order, sales order, vendor bill or customer invoice.
type Document struct {
	DocumentID          string          `json:"documentID"`
	Kind                DocumentKind    `json:"kind"`
	Number              string          `json:"number"`
	DocumentDate        time.Time       `json:"documentDate"`
	DueDate             *time.Time      `json:"dueDate,omitempty"`
	ContactID           string          `json:"contactID"`
	Notes               string          `json:"notes"`
	Status              DocumentStatus  `json:"status"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxAmount           decimal.Decimal `json:"taxAmount"`
	Total               decimal.Decimal `json:"total"`
	PaidAmount          decimal.Decimal `json:"paidAmount"`
	PaymentStatus       PaymentStatus   `json:"paymentStatus,omitempty"` // empty for orders
	SourceDocumentID    *string         `json:"sourceDocumentID,omitempty"`
	ConvertedDocumentID *string         `json:"convertedDocumentID,omitempty"`
	Items               []LineItem      `json:"items"`
	AuditFields
}

// Remaining is the unpaid part of the document total.
func (d Document) Remaining() decimal.Decimal {
	return d.Total.Sub(d.PaidAmount)
}

// Postings are the ledger entries and stock movements written together with a document change.
type Postings struct {
	Entries   []LedgerEntry
	Movements []StockMovement
}

// IsEmpty reports whether nothing is to be written.
func (p *Postings) IsEmpty() bool {
	return p == nil || (len(p.Entries) == 0 && len(p.Movements) == 0)
}

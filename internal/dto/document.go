package dto

import (
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one line of a new document. UnitPrice and TaxID fall back to the product's
// price and default tax when omitted.
type LineItemRequest struct {
	ProductID   string           `json:"productID" binding:"required,uuid"`
	Description string           `json:"description" binding:"max=500"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"required,decimal_gte=0,decimal_places=2"`
	UnitPrice   *decimal.Decimal `json:"unitPrice" binding:"omitempty,decimal_gte=0,decimal_places=2"`
	TaxID       *string          `json:"taxID" binding:"omitempty,uuid"`
}

// CreateDocumentRequest creates a purchase order, sales order, vendor bill or customer invoice.
// The document kind comes from the route.
type CreateDocumentRequest struct {
	ContactID    string            `json:"contactID" binding:"required,uuid"`
	DocumentDate string            `json:"documentDate" binding:"required,datetime=2006-01-02"`
	DueDate      *string           `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes        string            `json:"notes" binding:"max=2000"`
	Items        []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ConvertOrderRequest carries the dates of the bill or invoice created from an order.
// A missing DocumentDate means today.
type ConvertOrderRequest struct {
	DocumentDate *string `json:"documentDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate      *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Notes        *string `json:"notes" binding:"omitempty,max=2000"`
}

// ListDocumentsParams holds the query parameters of a document listing.
type ListDocumentsParams struct {
	ContactID     string `form:"contactId" binding:"omitempty,uuid"`
	Status        string `form:"status" binding:"omitempty,oneof=DRAFT CONVERTED ISSUED"`
	PaymentStatus string `form:"paymentStatus" binding:"omitempty,oneof=UNPAID PARTIAL PAID"`
	From          string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken     string `form:"nextToken"`
}

type LineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	LineNo      int             `json:"lineNo"`
	ProductID   string          `json:"productID"`
	TaxID       *string         `json:"taxID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Total       decimal.Decimal `json:"total"`
}

type DocumentResponse struct {
	DocumentID          string                `json:"documentID"`
	Kind                domain.DocumentKind   `json:"kind"`
	Number              string                `json:"number"`
	DocumentDate        string                `json:"documentDate"`
	DueDate             *string               `json:"dueDate"`
	ContactID           string                `json:"contactID"`
	Notes               string                `json:"notes"`
	Status              domain.DocumentStatus `json:"status"`
	Subtotal            decimal.Decimal       `json:"subtotal"`
	TaxAmount           decimal.Decimal       `json:"taxAmount"`
	Total               decimal.Decimal       `json:"total"`
	PaidAmount          *decimal.Decimal      `json:"paidAmount,omitempty"`
	PaymentStatus       domain.PaymentStatus  `json:"paymentStatus,omitempty"`
	SourceDocumentID    *string               `json:"sourceDocumentID"`
	ConvertedDocumentID *string               `json:"convertedDocumentID"`
	Items               []LineItemResponse    `json:"items"`
	CreatedAt           time.Time             `json:"createdAt"`
	CreatedBy           string                `json:"createdBy"`
	LastUpdatedAt       time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy       string                `json:"lastUpdatedBy"`
}

type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToDocumentResponse converts a domain.Document. Paid amount and payment status are only reported
// for bills and invoices.
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:          doc.DocumentID,
		Kind:                doc.Kind,
		Number:              doc.Number,
		DocumentDate:        doc.DocumentDate.Format(DateFormat),
		ContactID:           doc.ContactID,
		Notes:               doc.Notes,
		Status:              doc.Status,
		Subtotal:            doc.Subtotal,
		TaxAmount:           doc.TaxAmount,
		Total:               doc.Total,
		SourceDocumentID:    doc.SourceDocumentID,
		ConvertedDocumentID: doc.ConvertedDocumentID,
		Items:               make([]LineItemResponse, len(doc.Items)),
		CreatedAt:           doc.CreatedAt,
		CreatedBy:           doc.CreatedBy,
		LastUpdatedAt:       doc.LastUpdatedAt,
		LastUpdatedBy:       doc.LastUpdatedBy,
	}
	if doc.DueDate != nil {
		due := doc.DueDate.Format(DateFormat)
		resp.DueDate = &due
	}
	if doc.Kind.IsPayable() {
		paid := doc.PaidAmount
		resp.PaidAmount = &paid
		resp.PaymentStatus = doc.PaymentStatus
	}
	for i, item := range doc.Items {
		resp.Items[i] = LineItemResponse{
			LineItemID:  item.LineItemID,
			LineNo:      item.LineNo,
			ProductID:   item.ProductID,
			TaxID:       item.TaxID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxAmount:   item.TaxAmount,
			Total:       item.Total,
		}
	}
	return resp
}

func ToListDocumentsResponse(docs []domain.Document, nextToken *string) ListDocumentsResponse {
	out := ListDocumentsResponse{Documents: make([]DocumentResponse, len(docs)), NextToken: nextToken}
	for i := range docs {
		out.Documents[i] = ToDocumentResponse(&docs[i])
	}
	return out
}

package services

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
)

// DocumentReaderSvc defines read operations for orders, bills and invoices
type DocumentReaderSvc interface {
	GetDocument(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error)

	// ListDocuments returns a page of documents and the token of the next page, if any.
	ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) ([]domain.Document, *string, error)
}

// DocumentWriterSvc defines write operations for orders, bills and invoices
type DocumentWriterSvc interface {
	// CreateDocument prices the lines, numbers the document and persists it. Bills and invoices
	// are posted to the ledger and stock in the same transaction.
	CreateDocument(ctx context.Context, kind domain.DocumentKind, req dto.CreateDocumentRequest, userID string) (*domain.Document, error)

	// ConvertOrder turns a sales order into a customer invoice or a purchase order into a vendor bill.
	ConvertOrder(ctx context.Context, orderKind domain.DocumentKind, orderID string, req dto.ConvertOrderRequest, userID string) (*domain.Document, error)

	// DeleteDocument removes a draft order, or an unpaid bill or invoice together with reversing postings.
	DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, userID string) error
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/utils/pagination"
)

// DocumentFilter narrows a document listing. Results are ordered newest first by
// (document_date, created_at, id) and start after the cursor when one is set.
type DocumentFilter struct {
	ContactID     *string
	Status        *domain.DocumentStatus
	PaymentStatus *domain.PaymentStatus
	From          *time.Time
	To            *time.Time
	Limit         int
	After         *pagination.Cursor
}

// ConvertFunc builds the bill or invoice for a locked order. It runs inside the conversion transaction.
type ConvertFunc func(order domain.Document) (*domain.Document, *domain.Postings, error)

// DeleteGuard decides whether a locked document may be deleted and returns the postings to append
// with the deletion. It runs inside the deletion transaction.
type DeleteGuard func(doc domain.Document) (*domain.Postings, error)

// DocumentReader defines read operations for the four document kinds
type DocumentReader interface {
	// FindDocumentByID retrieves a document with its line items in line order.
	FindDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error)

	// ListDocuments retrieves up to filter.Limit+1 documents without their line items.
	ListDocuments(ctx context.Context, kind domain.DocumentKind, filter DocumentFilter) ([]domain.Document, error)
}

// DocumentWriter defines the transactional write operations for documents
type DocumentWriter interface {
	// SaveDocument inserts a document, its items and its postings in one transaction.
	SaveDocument(ctx context.Context, doc domain.Document, postings *domain.Postings) error

	// ConvertOrder locks the order, calls build and stores the result, marking the order CONVERTED.
	ConvertOrder(ctx context.Context, orderKind domain.DocumentKind, orderID string, build ConvertFunc) (*domain.Document, error)

	// DeleteDocument locks the document, calls guard, deletes the row and appends the returned postings.
	DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, guard DeleteGuard) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// DocumentNumberGenerator hands out document numbers unique within a kind. Numbers taken by a
// transaction that later fails are not reused.
type DocumentNumberGenerator interface {
	NextNumber(ctx context.Context, kind domain.DocumentKind) (string, error)
}

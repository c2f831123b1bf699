package repositories

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
)

// ApplyPaymentFunc computes a payment against a locked bill or invoice. It runs inside the payment transaction.
type ApplyPaymentFunc func(doc domain.Document) (*domain.PaymentApplication, error)

type PaymentReader interface {
	FindPaymentByID(ctx context.Context, kind domain.DocumentKind, paymentID string) (*domain.Payment, error)
	ListPaymentsByDocument(ctx context.Context, kind domain.DocumentKind, documentID string) ([]domain.Payment, error)
}

type PaymentWriter interface {
	// RecordPayment locks the document row, calls apply and persists the payment, the document's
	// settlement state and the ledger entries in one transaction.
	RecordPayment(ctx context.Context, kind domain.DocumentKind, documentID string, apply ApplyPaymentFunc) (*domain.PaymentApplication, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

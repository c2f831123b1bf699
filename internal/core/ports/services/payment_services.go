package services

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
)

type PaymentSvcFacade interface {
	// RecordPayment settles part or all of a vendor bill or customer invoice.
	RecordPayment(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.RecordPaymentRequest, userID string) (*domain.PaymentApplication, error)
	ListPayments(ctx context.Context, kind domain.DocumentKind, documentID string) ([]domain.Payment, error)
	GetPayment(ctx context.Context, kind domain.DocumentKind, paymentID string) (*domain.Payment, error)
}

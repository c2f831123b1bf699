package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/platform/config"
	"github.com/SscSPs/books_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	postings    *postingResolver
}

// NewPaymentService creates the service recording payments against bills and invoices
func NewPaymentService(repo portsrepo.PaymentRepositoryFacade, accounts portsrepo.AccountReader, codes config.PostingAccounts) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: newBaseService(),
		paymentRepo: repo,
		postings:    newPostingResolver(accounts, codes),
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment applies a payment under the document row lock so concurrent payments cannot
// together exceed the document total.
func (s *paymentService) RecordPayment(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.RecordPaymentRequest, userID string) (*domain.PaymentApplication, error) {
	if !kind.IsPayable() {
		return nil, apperrors.NewValidationError("payments cannot be recorded against a %s", kind)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	paymentDate, err := dto.ParseDate("paymentDate", req.PaymentDate)
	if err != nil {
		return nil, err
	}

	accts, err := s.postings.resolve(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve posting accounts")
		return nil, err
	}

	amount := *req.Amount
	now := s.Now()
	apply := func(doc domain.Document) (*domain.PaymentApplication, error) {
		if paymentDate.Before(doc.DocumentDate) {
			return nil, apperrors.NewValidationError("paymentDate is before the document date %s", doc.DocumentDate.Format(dto.DateFormat))
		}
		outcome, err := accounting.ApplyPayment(doc, amount)
		if err != nil {
			return nil, err
		}

		payment := domain.Payment{
			PaymentID:    uuid.NewString(),
			DocumentKind: kind,
			DocumentID:   doc.DocumentID,
			ContactID:    doc.ContactID,
			PaymentDate:  paymentDate,
			Method:       req.Method,
			Amount:       amount,
			Reference:    req.Reference,
			Notes:        req.Notes,
			AuditFields:  domain.NewAuditFields(userID, now),
		}
		entries, err := paymentEntries(doc, payment, accts, now)
		if err != nil {
			return nil, err
		}

		return &domain.PaymentApplication{
			Payment:       payment,
			PaidAmount:    outcome.NewPaidAmount,
			PaymentStatus: outcome.NewStatus,
			Entries:       entries,
		}, nil
	}

	app, err := s.paymentRepo.RecordPayment(ctx, kind, documentID, apply)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to record payment",
			slog.String("kind", string(kind)),
			slog.String("document_id", documentID),
			slog.String("amount", amount.String()))
		return nil, err
	}

	return app, nil
}

func (s *paymentService) ListPayments(ctx context.Context, kind domain.DocumentKind, documentID string) ([]domain.Payment, error) {
	if !kind.IsPayable() {
		return nil, apperrors.NewValidationError("a %s has no payments", kind)
	}
	payments, err := s.paymentRepo.ListPaymentsByDocument(ctx, kind, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *paymentService) GetPayment(ctx context.Context, kind domain.DocumentKind, paymentID string) (*domain.Payment, error) {
	if !kind.IsPayable() {
		return nil, apperrors.NewValidationError("a %s has no payments", kind)
	}
	payment, err := s.paymentRepo.FindPaymentByID(ctx, kind, paymentID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return payment, nil
}

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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxPercentageRate = decimal.NewFromInt(100)

type taxService struct {
	BaseService
	taxRepo portsrepo.TaxRepositoryFacade
}

// NewTaxService creates a new tax rate service
func NewTaxService(repo portsrepo.TaxRepositoryFacade) portssvc.TaxSvcFacade {
	return &taxService{BaseService: newBaseService(), taxRepo: repo}
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

func (s *taxService) CreateTax(ctx context.Context, req dto.CreateTaxRequest, userID string) (*domain.Tax, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Method == domain.TaxPercentage && req.Rate.GreaterThan(maxPercentageRate) {
		return nil, apperrors.NewValidationError("percentage rate must be between 0 and 100, got %s", req.Rate.String())
	}

	tax := domain.Tax{
		TaxID:       uuid.NewString(),
		Name:        req.Name,
		Rate:        *req.Rate,
		Method:      req.Method,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.taxRepo.SaveTax(ctx, tax); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save tax", slog.String("name", tax.Name))
		return nil, err
	}

	return &tax, nil
}

func (s *taxService) GetTaxByID(ctx context.Context, taxID string) (*domain.Tax, error) {
	tax, err := s.taxRepo.FindTaxByID(ctx, taxID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find tax", slog.String("tax_id", taxID))
		return nil, err
	}
	return tax, nil
}

func (s *taxService) ListTaxes(ctx context.Context) ([]domain.Tax, error) {
	taxes, err := s.taxRepo.ListTaxes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list taxes")
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	if taxes == nil {
		return []domain.Tax{}, nil
	}
	return taxes, nil
}

// DeleteTax removes a tax no line item refers to.
func (s *taxService) DeleteTax(ctx context.Context, taxID string) error {
	if err := s.taxRepo.DeleteTax(ctx, taxID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete tax", slog.String("tax_id", taxID))
		return err
	}
	return nil
}

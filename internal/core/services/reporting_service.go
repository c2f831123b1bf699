package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	contactRepo   portsrepo.ContactReader
	productRepo   portsrepo.ProductReader
	stockRepo     portsrepo.StockRepository
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingContacts sets the contact reader used by the partner ledger.
func WithReportingContacts(repo portsrepo.ContactReader) ReportingServiceOption {
	return func(s *reportingService) {
		s.contactRepo = repo
	}
}

// WithReportingStock sets the product and stock readers used by the stock statement.
func WithReportingStock(products portsrepo.ProductReader, stock portsrepo.StockRepository) ReportingServiceOption {
	return func(s *reportingService) {
		s.productRepo = products
		s.stockRepo = stock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: repo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	balances, err := s.reportingRepo.GetAccountBalances(ctx, nil, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to get trial balance data", slog.Time("as_of", asOf))
		return nil, fmt.Errorf("failed to get trial balance data: %w", err)
	}

	tb := accounting.BuildTrialBalance(asOf, balances)
	if !tb.IsBalanced {
		s.LogError(ctx, fmt.Errorf("trial balance out of balance"), "Ledger integrity check failed",
			slog.String("total_debit", tb.TotalDebit.String()),
			slog.String("total_credit", tb.TotalCredit.String()))
	}
	return &tb, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLoss, error) {
	if from.After(to) {
		return nil, apperrors.NewValidationError("from date %s is after to date %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	activity, err := s.reportingRepo.GetAccountBalances(ctx, &from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to get profit and loss data", slog.Time("from", from), slog.Time("to", to))
		return nil, fmt.Errorf("failed to get profit and loss data: %w", err)
	}

	report := accounting.BuildProfitAndLoss(from, to, activity)
	return &report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	balances, err := s.reportingRepo.GetAccountBalances(ctx, nil, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to get balance sheet data", slog.Time("as_of", asOf))
		return nil, fmt.Errorf("failed to get balance sheet data: %w", err)
	}

	sheet := accounting.BuildBalanceSheet(asOf, balances)
	if !sheet.IsBalanced {
		s.GetLogger(ctx).Warn("Balance sheet is not balanced",
			slog.Time("as_of", asOf),
			slog.String("assets", sheet.Assets.Total.String()),
			slog.String("liabilities", sheet.Liabilities.Total.String()),
			slog.String("equity", sheet.Equity.Total.String()))
	}
	return &sheet, nil
}

// PartnerLedger lists a counterparty's entries with a running balance, opening from everything
// posted before from.
func (s *reportingService) PartnerLedger(ctx context.Context, contactID string, from, to *time.Time) (*domain.PartnerLedger, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, apperrors.NewValidationError("from date is after to date")
	}

	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Contact lookup failed", slog.String("contact_id", contactID))
		return nil, err
	}

	opening, err := s.openingBalance(ctx, contactID, from)
	if err != nil {
		return nil, err
	}

	entries, err := s.reportingRepo.GetContactEntries(ctx, contactID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to get partner ledger entries", slog.String("contact_id", contactID))
		return nil, fmt.Errorf("failed to get partner ledger entries: %w", err)
	}

	ledger := accounting.BuildPartnerLedger(*contact, from, to, opening, entries)
	return &ledger, nil
}

func (s *reportingService) openingBalance(ctx context.Context, contactID string, from *time.Time) (decimal.Decimal, error) {
	if from == nil {
		return decimal.Zero, nil
	}
	opening, err := s.reportingRepo.GetContactBalanceBefore(ctx, contactID, *from)
	if err != nil {
		s.LogError(ctx, err, "Failed to get partner opening balance", slog.String("contact_id", contactID))
		return decimal.Zero, fmt.Errorf("failed to get partner opening balance: %w", err)
	}
	return opening, nil
}

// StockStatement values closing quantities at purchase price as of a date.
func (s *reportingService) StockStatement(ctx context.Context, asOf time.Time, productID *string) (*domain.StockStatement, error) {
	var products []domain.Product
	if productID != nil {
		product, err := s.productRepo.FindProductByID(ctx, *productID)
		if err != nil {
			s.LogUnexpected(ctx, err, "Product lookup failed", slog.String("product_id", *productID))
			return nil, err
		}
		products = []domain.Product{*product}
	} else {
		all, err := s.productRepo.ListProducts(ctx, portsrepo.ProductFilter{})
		if err != nil {
			s.LogError(ctx, err, "Failed to list products for stock statement")
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		products = all
	}

	movements, err := s.stockRepo.ListMovementsUpTo(ctx, asOf, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock movements", slog.Time("as_of", asOf))
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}

	statement := accounting.BuildStockStatement(asOf, products, movements)
	return &statement, nil
}

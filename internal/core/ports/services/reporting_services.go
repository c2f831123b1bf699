package services

import (
	"context"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)

	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLoss, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)

	// PartnerLedger lists a counterparty's entries with a running balance. Nil bounds are open.
	PartnerLedger(ctx context.Context, contactID string, from, to *time.Time) (*domain.PartnerLedger, error)

	// StockStatement values on-hand quantities as of a date, optionally for one product.
	StockStatement(ctx context.Context, asOf time.Time, productID *string) (*domain.StockStatement, error)
}

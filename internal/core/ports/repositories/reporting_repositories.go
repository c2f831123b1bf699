package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetAccountBalances sums debits and credits per account for entries dated in [from, to].
	// A nil from means from the beginning. Every account is returned, with zero totals when idle.
	GetAccountBalances(ctx context.Context, from *time.Time, to time.Time) ([]domain.AccountBalance, error)

	// GetContactEntries lists a counterparty's ledger entries dated in [from, to]; nil bounds are open.
	GetContactEntries(ctx context.Context, contactID string, from, to *time.Time) ([]domain.LedgerEntry, error)

	// GetContactBalanceBefore returns debits minus credits of a counterparty's entries dated before the given day.
	GetContactBalanceBefore(ctx context.Context, contactID string, before time.Time) (decimal.Decimal, error)
}

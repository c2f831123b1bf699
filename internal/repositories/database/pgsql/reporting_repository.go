package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountBalances sums debits and credits per account for entries dated in [from, to]. Idle
// accounts are listed with zero totals.
func (r *reportingRepository) GetAccountBalances(ctx context.Context, from *time.Time, to time.Time) ([]domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(CASE WHEN e.entry_type = 'DEBIT' THEN e.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN e.entry_type = 'CREDIT' THEN e.amount ELSE 0 END), 0) AS total_credit
		FROM chart_of_accounts a
		LEFT JOIN ledger_entries e
			ON e.account_id = a.account_id
			AND ($1::date IS NULL OR e.transaction_date >= $1)
			AND e.transaction_date <= $2
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	ms, err := collect[models.AccountTotals](ctx, r.Pool, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying account balances: %w", err)
	}
	return mapping.ToDomainAccountBalanceSlice(ms), nil
}

// GetContactEntries lists the entries carrying a counterparty, oldest first.
func (r *reportingRepository) GetContactEntries(ctx context.Context, contactID string, from, to *time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE contact_id = $1
			AND ($2::date IS NULL OR transaction_date >= $2)
			AND ($3::date IS NULL OR transaction_date <= $3)
		ORDER BY transaction_date, created_at, ledger_entry_id;
	`
	ms, err := collect[models.LedgerEntry](ctx, r.Pool, query, contactID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying entries of contact %s: %w", contactID, err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// GetContactBalanceBefore returns debits minus credits of a counterparty's entries dated before the given day.
func (r *reportingRepository) GetContactBalanceBefore(ctx context.Context, contactID string, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN entry_type = 'DEBIT' THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE contact_id = $1 AND transaction_date < $2;
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, contactID, before).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("error querying opening balance of contact %s: %w", contactID, err)
	}
	return balance, nil
}

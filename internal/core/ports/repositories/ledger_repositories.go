package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/utils/pagination"
)

// LedgerFilter narrows an account statement. Entries are ordered newest first by
// (transaction_date, created_at, id).
type LedgerFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
	After *pagination.Cursor
}

// LedgerRepository reads the append-only ledger.
type LedgerRepository interface {
	// ListEntriesByAccount retrieves up to filter.Limit+1 entries of an account.
	ListEntriesByAccount(ctx context.Context, accountID string, filter LedgerFilter) ([]domain.LedgerEntry, error)
}

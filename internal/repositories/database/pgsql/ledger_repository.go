package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `ledger_entry_id, account_id, contact_id, entry_type, amount, transaction_date, reference_type,
	reference_id, description, created_at, created_by`

const insertEntryQuery = `INSERT INTO ledger_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

// PgxLedgerRepository reads ledger entries. Entries are only ever written alongside the document
// or payment that caused them.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func queueEntry(batch *pgx.Batch, entry domain.LedgerEntry) {
	m := mapping.ToModelLedgerEntry(entry)
	batch.Queue(insertEntryQuery,
		m.LedgerEntryID, m.AccountID, m.ContactID, m.EntryType, m.Amount, m.TransactionDate, m.ReferenceType,
		m.ReferenceID, m.Description, m.CreatedAt, m.CreatedBy,
	)
}

// queuePostings adds every entry and movement of p to batch.
func queuePostings(batch *pgx.Batch, p *domain.Postings) {
	if p.IsEmpty() {
		return
	}
	for _, e := range p.Entries {
		queueEntry(batch, e)
	}
	for _, m := range p.Movements {
		queueMovement(batch, m)
	}
}

// ListEntriesByAccount lists an account's entries newest first, fetching one extra row so the
// caller can tell whether another page exists.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, filter portsrepo.LedgerFilter) ([]domain.LedgerEntry, error) {
	args := []any{accountID, filter.From, filter.To, filter.Limit + 1}
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE account_id = $1
			AND ($2::date IS NULL OR transaction_date >= $2)
			AND ($3::date IS NULL OR transaction_date <= $3)`
	if filter.After != nil {
		query += `
			AND (transaction_date, created_at, ledger_entry_id) < ($5, $6, $7)`
		args = append(args, filter.After.Date, filter.After.CreatedAt, filter.After.ID)
	}
	query += `
		ORDER BY transaction_date DESC, created_at DESC, ledger_entry_id DESC
		LIMIT $4;`

	ms, err := collect[models.LedgerEntry](ctx, r.Pool, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for account %s: %w", accountID, err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, code, name, account_type, parent_account_id, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart of accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO chart_of_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Code, m.Name, m.AccountType, m.ParentAccountID, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", m.Code, mapPgError(err, "account", m.Code))
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = $1;`
	m, err := collectOne[models.Account](ctx, r.Pool, query, accountID)
	if err != nil {
		return nil, mapPgError(err, "account", accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByCodes retrieves the accounts with the given codes keyed by code.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	if len(codes) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE code = ANY($1);`
	ms, err := collect[models.Account](ctx, r.Pool, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by codes: %w", err)
	}

	accounts := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		accounts[m.Code] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// ListAccounts retrieves a page of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	var accountType *string
	if filter.Type != nil {
		t := string(*filter.Type)
		accountType = &t
	}
	query := `
		SELECT ` + accountColumns + `
		FROM chart_of_accounts
		WHERE ($1::text IS NULL OR account_type = $1)
		ORDER BY code
		LIMIT $2 OFFSET $3;
	`
	ms, err := collect[models.Account](ctx, r.Pool, query, accountType, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// UpdateAccount updates the mutable fields of an account. Code and type are fixed after creation.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE chart_of_accounts
		SET name = $2, parent_account_id = $3, description = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1;
	`
	return execOne(ctx, r.Pool, "account", m.AccountID, query,
		m.AccountID, m.Name, m.ParentAccountID, m.Description, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

// DeleteAccount removes an account. An account with ledger entries cannot be deleted.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return execOne(ctx, r.Pool, "account", accountID, `DELETE FROM chart_of_accounts WHERE account_id = $1;`, accountID)
}

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

const taxColumns = `tax_id, name, rate, method, created_at, created_by, last_updated_at, last_updated_by`

type PgxTaxRepository struct {
	BaseRepository
}

func newPgxTaxRepository(pool *pgxpool.Pool) portsrepo.TaxRepositoryFacade {
	return &PgxTaxRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxRepositoryFacade = (*PgxTaxRepository)(nil)

func (r *PgxTaxRepository) SaveTax(ctx context.Context, tax domain.Tax) error {
	m := mapping.ToModelTax(tax)
	query := `INSERT INTO taxes (` + taxColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	_, err := r.Pool.Exec(ctx, query,
		m.TaxID, m.Name, m.Rate, m.Method, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tax %s: %w", m.Name, mapPgError(err, "tax", m.Name))
	}
	return nil
}

func (r *PgxTaxRepository) FindTaxByID(ctx context.Context, taxID string) (*domain.Tax, error) {
	query := `SELECT ` + taxColumns + ` FROM taxes WHERE tax_id = $1;`
	m, err := collectOne[models.Tax](ctx, r.Pool, query, taxID)
	if err != nil {
		return nil, mapPgError(err, "tax", taxID)
	}
	t := mapping.ToDomainTax(m)
	return &t, nil
}

func (r *PgxTaxRepository) FindTaxesByIDs(ctx context.Context, taxIDs []string) (map[string]domain.Tax, error) {
	if len(taxIDs) == 0 {
		return map[string]domain.Tax{}, nil
	}
	query := `SELECT ` + taxColumns + ` FROM taxes WHERE tax_id = ANY($1);`
	ms, err := collect[models.Tax](ctx, r.Pool, query, taxIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query taxes by IDs: %w", err)
	}

	taxes := make(map[string]domain.Tax, len(ms))
	for _, m := range ms {
		taxes[m.TaxID] = mapping.ToDomainTax(m)
	}
	return taxes, nil
}

func (r *PgxTaxRepository) ListTaxes(ctx context.Context) ([]domain.Tax, error) {
	query := `SELECT ` + taxColumns + ` FROM taxes ORDER BY name;`
	ms, err := collect[models.Tax](ctx, r.Pool, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	return mapping.ToDomainTaxSlice(ms), nil
}

// DeleteTax removes a tax no product or line item refers to.
func (r *PgxTaxRepository) DeleteTax(ctx context.Context, taxID string) error {
	return execOne(ctx, r.Pool, "tax", taxID, `DELETE FROM taxes WHERE tax_id = $1;`, taxID)
}

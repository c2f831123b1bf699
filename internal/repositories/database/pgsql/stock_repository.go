package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movementColumns = `movement_id, product_id, movement_type, quantity, movement_date, reference_type, reference_id,
	notes, created_at, created_by`

const insertMovementQuery = `INSERT INTO stock_movements (` + movementColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepository {
	return &PgxStockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockRepository = (*PgxStockRepository)(nil)

func queueMovement(batch *pgx.Batch, movement domain.StockMovement) {
	m := mapping.ToModelStockMovement(movement)
	batch.Queue(insertMovementQuery,
		m.MovementID, m.ProductID, m.MovementType, m.Quantity, m.MovementDate, m.ReferenceType, m.ReferenceID,
		m.Notes, m.CreatedAt, m.CreatedBy,
	)
}

func (r *PgxStockRepository) SaveMovement(ctx context.Context, movement domain.StockMovement) error {
	m := mapping.ToModelStockMovement(movement)
	_, err := r.Pool.Exec(ctx, insertMovementQuery,
		m.MovementID, m.ProductID, m.MovementType, m.Quantity, m.MovementDate, m.ReferenceType, m.ReferenceID,
		m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock movement: %w", mapPgError(err, "product", m.ProductID))
	}
	return nil
}

func (r *PgxStockRepository) ListMovements(ctx context.Context, productID *string, limit, offset int) ([]domain.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE ($1::uuid IS NULL OR product_id = $1)
		ORDER BY movement_date DESC, created_at DESC, movement_id DESC
		LIMIT $2 OFFSET $3;
	`
	ms, err := collect[models.StockMovement](ctx, r.Pool, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	return mapping.ToDomainStockMovementSlice(ms), nil
}

func (r *PgxStockRepository) ListMovementsUpTo(ctx context.Context, asOf time.Time, productID *string) ([]domain.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE movement_date <= $1 AND ($2::uuid IS NULL OR product_id = $2)
		ORDER BY movement_date, created_at;
	`
	ms, err := collect[models.StockMovement](ctx, r.Pool, query, asOf, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements up to %s: %w", asOf.Format(time.DateOnly), err)
	}
	return mapping.ToDomainStockMovementSlice(ms), nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxNumberAttempts bounds how many sequence values are drawn when numbers already exist, for
// instance after documents were imported with explicit numbers.
const maxNumberAttempts = 5

// PgxNumberGenerator draws document numbers from a per-series counter row. The counter is bumped
// outside the caller's transaction, so a failed save leaves a gap.
type PgxNumberGenerator struct {
	BaseRepository
}

func newPgxNumberGenerator(pool *pgxpool.Pool) portsrepo.DocumentNumberGenerator {
	return &PgxNumberGenerator{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentNumberGenerator = (*PgxNumberGenerator)(nil)

// FormatNumber renders the nth number of a series, e.g. INV-000042.
func FormatNumber(series string, n int64) string {
	return fmt.Sprintf("%s-%06d", series, n)
}

func (g *PgxNumberGenerator) NextNumber(ctx context.Context, kind domain.DocumentKind) (string, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return "", err
	}

	series := kind.Series()
	next := `
		INSERT INTO document_sequences (series, last_value) VALUES ($1, 1)
		ON CONFLICT (series) DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value;
	`
	exists := `SELECT EXISTS (SELECT 1 FROM ` + t.documents + ` WHERE number = $1);`

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		var n int64
		if err := g.Pool.QueryRow(ctx, next, series).Scan(&n); err != nil {
			return "", fmt.Errorf("failed to advance %s sequence: %w", series, err)
		}
		number := FormatNumber(series, n)

		var taken bool
		if err := g.Pool.QueryRow(ctx, exists, number).Scan(&taken); err != nil {
			return "", fmt.Errorf("failed to check %s: %w", number, err)
		}
		if !taken {
			return number, nil
		}
	}
	return "", fmt.Errorf("no free %s number after %d attempts", series, maxNumberAttempts)
}

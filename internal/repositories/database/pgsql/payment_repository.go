package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, document_id, contact_id, payment_date, method, amount, reference, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func paymentTables(kind domain.DocumentKind) (documentTables, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return t, err
	}
	if t.payments == "" {
		return t, apperrors.NewValidationError("a %s has no payments", kind)
	}
	return t, nil
}

// RecordPayment locks the bill or invoice so concurrent payments are applied one after another,
// then stores the payment, the new settlement state and the payment's ledger entries.
func (r *PgxPaymentRepository) RecordPayment(ctx context.Context, kind domain.DocumentKind, documentID string, apply portsrepo.ApplyPaymentFunc) (*domain.PaymentApplication, error) {
	t, err := paymentTables(kind)
	if err != nil {
		return nil, err
	}

	var app *domain.PaymentApplication
	err = r.WithTx(ctx, func(tx pgx.Tx) error {
		query := `SELECT ` + documentColumns + ` FROM ` + t.documents + ` WHERE document_id = $1 FOR UPDATE`
		m, err := collectOne[models.Document](ctx, tx, query, documentID)
		if err != nil {
			return mapPgError(err, t.entity, documentID)
		}

		app, err = apply(mapping.ToDomainDocument(kind, m))
		if err != nil {
			return err
		}

		p := mapping.ToModelPayment(app.Payment)
		insert := `INSERT INTO ` + t.payments + ` (` + paymentColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
		if _, err := tx.Exec(ctx, insert,
			p.PaymentID, p.DocumentID, p.ContactID, p.PaymentDate, p.Method, p.Amount, p.Reference, p.Notes,
			p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to insert payment for %s %s: %w", t.entity, m.Number, mapPgError(err, "payment", p.PaymentID))
		}

		update := `
			UPDATE ` + t.documents + `
			SET paid_amount = $2, payment_status = $3, last_updated_at = $4, last_updated_by = $5
			WHERE document_id = $1;
		`
		if err := execOne(ctx, tx, t.entity, documentID, update,
			documentID, app.PaidAmount, string(app.PaymentStatus), p.CreatedAt, p.CreatedBy,
		); err != nil {
			return fmt.Errorf("failed to update settlement of %s %s: %w", t.entity, m.Number, err)
		}

		batch := &pgx.Batch{}
		for _, e := range app.Entries {
			queueEntry(batch, e)
		}
		if err := sendBatch(ctx, tx, batch); err != nil {
			return fmt.Errorf("failed to post payment %s: %w", p.PaymentID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, kind domain.DocumentKind, paymentID string) (*domain.Payment, error) {
	t, err := paymentTables(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + paymentColumns + ` FROM ` + t.payments + ` WHERE payment_id = $1;`
	m, err := collectOne[models.Payment](ctx, r.Pool, query, paymentID)
	if err != nil {
		return nil, mapPgError(err, "payment", paymentID)
	}
	p := mapping.ToDomainPayment(kind, m)
	return &p, nil
}

// ListPaymentsByDocument lists a document's payments in the order they were made.
func (r *PgxPaymentRepository) ListPaymentsByDocument(ctx context.Context, kind domain.DocumentKind, documentID string) ([]domain.Payment, error) {
	t, err := paymentTables(kind)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT ` + paymentColumns + `
		FROM ` + t.payments + `
		WHERE document_id = $1
		ORDER BY payment_date, created_at;
	`
	ms, err := collect[models.Payment](ctx, r.Pool, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments of %s %s: %w", t.entity, documentID, err)
	}
	return mapping.ToDomainPaymentSlice(kind, ms), nil
}

package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/models"
	"github.com/SscSPs/books_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const documentColumns = `document_id, number, document_date, due_date, contact_id, notes, status,
	subtotal, tax_amount, total, paid_amount, payment_status, source_document_id, converted_document_id,
	created_at, created_by, last_updated_at, last_updated_by`

const lineItemColumns = `line_item_id, document_id, line_no, product_id, tax_id, description, quantity, unit_price,
	tax_amount, total`

// documentTables names the tables holding one document kind.
type documentTables struct {
	documents string
	items     string
	payments  string // empty for orders
	entity    string
}

var tablesByKind = map[domain.DocumentKind]documentTables{
	domain.PurchaseOrder:   {documents: "purchase_orders", items: "purchase_order_items", entity: "purchase order"},
	domain.SalesOrder:      {documents: "sales_orders", items: "sales_order_items", entity: "sales order"},
	domain.VendorBill:      {documents: "vendor_bills", items: "vendor_bill_items", payments: "bill_payments", entity: "bill"},
	domain.CustomerInvoice: {documents: "customer_invoices", items: "customer_invoice_items", payments: "invoice_payments", entity: "invoice"},
}

func tablesFor(kind domain.DocumentKind) (documentTables, error) {
	t, ok := tablesByKind[kind]
	if !ok {
		return documentTables{}, apperrors.NewValidationError("unknown document kind '%s'", kind)
	}
	return t, nil
}

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a repository for orders, bills and invoices.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// findDocument loads a document and its items through q. With lock set the document row is held
// FOR UPDATE until the surrounding transaction ends.
func findDocument(ctx context.Context, q querier, kind domain.DocumentKind, documentID string, lock bool) (*domain.Document, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + documentColumns + ` FROM ` + t.documents + ` WHERE document_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	m, err := collectOne[models.Document](ctx, q, query, documentID)
	if err != nil {
		return nil, mapPgError(err, t.entity, documentID)
	}

	itemsQuery := `SELECT ` + lineItemColumns + ` FROM ` + t.items + ` WHERE document_id = $1 ORDER BY line_no;`
	items, err := collect[models.LineItem](ctx, q, itemsQuery, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items of %s %s: %w", t.entity, documentID, err)
	}

	doc := mapping.ToDomainDocument(kind, m)
	doc.Items = mapping.ToDomainLineItemSlice(items)
	return &doc, nil
}

// insertDocument writes the document row, then its items and postings in one batch.
func insertDocument(ctx context.Context, tx pgx.Tx, doc domain.Document, postings *domain.Postings) error {
	t, err := tablesFor(doc.Kind)
	if err != nil {
		return err
	}

	m := mapping.ToModelDocument(doc)
	query := `
		INSERT INTO ` + t.documents + ` (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, query,
		m.DocumentID, m.Number, m.DocumentDate, m.DueDate, m.ContactID, m.Notes, m.Status,
		m.Subtotal, m.TaxAmount, m.Total, m.PaidAmount, m.PaymentStatus, m.SourceDocumentID, m.ConvertedDocumentID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert %s %s: %w", t.entity, doc.Number, mapPgError(err, t.entity, doc.Number))
	}

	batch := &pgx.Batch{}
	itemQuery := `INSERT INTO ` + t.items + ` (` + lineItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	for _, item := range doc.Items {
		mi := mapping.ToModelLineItem(item)
		batch.Queue(itemQuery,
			mi.LineItemID, mi.DocumentID, mi.LineNo, mi.ProductID, mi.TaxID, mi.Description, mi.Quantity, mi.UnitPrice,
			mi.TaxAmount, mi.Total,
		)
	}
	queuePostings(batch, postings)

	if err := sendBatch(ctx, tx, batch); err != nil {
		return fmt.Errorf("failed to insert items and postings of %s %s: %w", t.entity, doc.Number, mapPgError(err, t.entity, doc.Number))
	}
	return nil
}

// sendBatch executes every queued statement and reports the first failure.
func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	// Close reads every result and returns the first error encountered
	return tx.SendBatch(ctx, batch).Close()
}

// SaveDocument inserts a document with its items and postings in one transaction.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, postings *domain.Postings) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		return insertDocument(ctx, tx, doc, postings)
	})
}

// FindDocumentByID retrieves a document with its line items.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.Document, error) {
	return findDocument(ctx, r.Pool, kind, documentID, false)
}

// ListDocuments lists documents newest first without items. One row beyond filter.Limit is
// fetched so the caller can tell whether another page exists.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, kind domain.DocumentKind, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	var status, paymentStatus *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	if filter.PaymentStatus != nil {
		s := string(*filter.PaymentStatus)
		paymentStatus = &s
	}

	args := []any{filter.ContactID, status, paymentStatus, filter.From, filter.To}
	query := `
		SELECT ` + documentColumns + `
		FROM ` + t.documents + `
		WHERE ($1::uuid IS NULL OR contact_id = $1)
			AND ($2::text IS NULL OR status = $2)
			AND ($3::text IS NULL OR payment_status = $3)
			AND ($4::date IS NULL OR document_date >= $4)
			AND ($5::date IS NULL OR document_date <= $5)`
	if filter.After != nil {
		args = append(args, filter.After.Date, filter.After.CreatedAt, filter.After.ID)
		query += `
			AND (document_date, created_at, document_id) < ($6, $7, $8)`
	}
	args = append(args, filter.Limit+1)
	query += `
		ORDER BY document_date DESC, created_at DESC, document_id DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	ms, err := collect[models.Document](ctx, r.Pool, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", t.entity, err)
	}
	return mapping.ToDomainDocumentSlice(kind, ms), nil
}

// ConvertOrder locks the order, lets build produce the bill or invoice, stores it and marks the
// order CONVERTED. Nothing is written when build fails.
func (r *PgxDocumentRepository) ConvertOrder(ctx context.Context, orderKind domain.DocumentKind, orderID string, build portsrepo.ConvertFunc) (*domain.Document, error) {
	t, err := tablesFor(orderKind)
	if err != nil {
		return nil, err
	}

	var converted *domain.Document
	err = r.WithTx(ctx, func(tx pgx.Tx) error {
		order, err := findDocument(ctx, tx, orderKind, orderID, true)
		if err != nil {
			return err
		}

		target, postings, err := build(*order)
		if err != nil {
			return err
		}
		if err := insertDocument(ctx, tx, *target, postings); err != nil {
			return err
		}

		query := `
			UPDATE ` + t.documents + `
			SET status = $2, converted_document_id = $3, last_updated_at = $4, last_updated_by = $5
			WHERE document_id = $1;
		`
		if err := execOne(ctx, tx, t.entity, orderID, query,
			orderID, string(domain.StatusConverted), target.DocumentID, target.LastUpdatedAt, target.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to mark %s %s converted: %w", t.entity, orderID, err)
		}

		converted = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return converted, nil
}

// DeleteDocument locks the document, asks guard for permission and the postings to append, then
// deletes it. Items go with the document; ledger entries and movements already written remain.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, guard portsrepo.DeleteGuard) error {
	t, err := tablesFor(kind)
	if err != nil {
		return err
	}

	return r.WithTx(ctx, func(tx pgx.Tx) error {
		doc, err := findDocument(ctx, tx, kind, documentID, true)
		if err != nil {
			return err
		}

		postings, err := guard(*doc)
		if err != nil {
			return err
		}

		if err := execOne(ctx, tx, t.entity, documentID,
			`DELETE FROM `+t.documents+` WHERE document_id = $1;`, documentID,
		); err != nil {
			return fmt.Errorf("failed to delete %s %s: %w", t.entity, doc.Number, err)
		}

		batch := &pgx.Batch{}
		queuePostings(batch, postings)
		if err := sendBatch(ctx, tx, batch); err != nil {
			return fmt.Errorf("failed to append reversals for %s %s: %w", t.entity, doc.Number, err)
		}
		return nil
	})
}

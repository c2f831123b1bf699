package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPgError(t *testing.T) {
	assert.Nil(t, mapPgError(nil, "contact", "c-1"))

	err := mapPgError(pgx.ErrNoRows, "contact", "c-1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "contact c-1")

	err = mapPgError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "taxes_name_key"}, "tax", "GST 18")
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	wrapped := fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgForeignKeyViolation})
	err = mapPgError(wrapped, "product", "p-1")
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.False(t, errors.Is(err, apperrors.ErrDuplicate))

	err = mapPgError(&pgconn.PgError{Code: pgInvalidTextRepr, Message: `invalid input syntax for type uuid: "abc"`}, "invoice", "abc")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))

	other := errors.New("connection reset")
	assert.Equal(t, other, mapPgError(other, "product", "p-1"))
}

func TestTablesFor(t *testing.T) {
	for kind, want := range map[domain.DocumentKind]string{
		domain.PurchaseOrder:   "purchase_orders",
		domain.SalesOrder:      "sales_orders",
		domain.VendorBill:      "vendor_bills",
		domain.CustomerInvoice: "customer_invoices",
	} {
		tables, err := tablesFor(kind)
		require.NoError(t, err)
		assert.Equal(t, want, tables.documents)
		assert.NotEmpty(t, tables.items)
	}

	_, err := tablesFor("CREDIT_NOTE")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = paymentTables(domain.SalesOrder)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	tables, err := paymentTables(domain.CustomerInvoice)
	require.NoError(t, err)
	assert.Equal(t, "invoice_payments", tables.payments)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-000042", FormatNumber(domain.CustomerInvoice.Series(), 42))
	assert.Equal(t, "PO-000001", FormatNumber(domain.PurchaseOrder.Series(), 1))
	assert.Equal(t, "BILL-1234567", FormatNumber("BILL", 1234567))
}

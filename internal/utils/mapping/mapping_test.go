package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentPaymentStatusNullability(t *testing.T) {
	order := domain.Document{DocumentID: "o-1", Kind: domain.SalesOrder, Status: domain.StatusDraft}
	row := ToModelDocument(order)
	assert.Nil(t, row.PaymentStatus)

	invoice := domain.Document{DocumentID: "i-1", Kind: domain.CustomerInvoice, Status: domain.StatusIssued, PaymentStatus: domain.PaymentPartial}
	row = ToModelDocument(invoice)
	require.NotNil(t, row.PaymentStatus)
	assert.Equal(t, "PARTIAL", *row.PaymentStatus)

	back := ToDomainDocument(domain.CustomerInvoice, row)
	assert.Equal(t, domain.PaymentPartial, back.PaymentStatus)
	assert.Equal(t, domain.CustomerInvoice, back.Kind)
	assert.NotNil(t, back.Items)
}

func TestLedgerEntryKeepsContact(t *testing.T) {
	contactID := "c-1"
	entry := domain.LedgerEntry{
		LedgerEntryID:   "e-1",
		AccountID:       "acc-1100",
		ContactID:       &contactID,
		EntryType:       domain.Debit,
		Amount:          decimal.RequireFromString("236.00"),
		TransactionDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ReferenceType:   domain.RefCustomerInvoice,
	}
	row := ToModelLedgerEntry(entry)
	assert.Equal(t, "DEBIT", row.EntryType)
	assert.Equal(t, entry, ToDomainLedgerEntry(row))
}

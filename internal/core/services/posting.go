package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	"github.com/SscSPs/books_backend/internal/platform/config"
	"github.com/SscSPs/books_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// postingAccountIDs are the resolved account IDs of the configured posting codes.
type postingAccountIDs struct {
	Cash          string
	Bank          string
	Receivable    string
	Payable       string
	Sales         string
	Purchases     string
	TaxPayable    string
	TaxReceivable string
}

// postingResolver maps the configured account codes onto chart-of-accounts rows.
type postingResolver struct {
	accounts portsrepo.AccountReader
	codes    config.PostingAccounts
}

func newPostingResolver(accounts portsrepo.AccountReader, codes config.PostingAccounts) *postingResolver {
	return &postingResolver{accounts: accounts, codes: codes}
}

func (r *postingResolver) resolve(ctx context.Context) (*postingAccountIDs, error) {
	found, err := r.accounts.FindAccountsByCodes(ctx, r.codes.Codes())
	if err != nil {
		return nil, fmt.Errorf("failed to load posting accounts: %w", err)
	}

	lookup := func(code string) (string, error) {
		acc, ok := found[code]
		if !ok {
			return "", fmt.Errorf("%w: posting account with code %s is not in the chart of accounts", apperrors.ErrInternal, code)
		}
		return acc.AccountID, nil
	}

	ids := &postingAccountIDs{}
	targets := []struct {
		code string
		dst  *string
	}{
		{r.codes.Cash, &ids.Cash},
		{r.codes.Bank, &ids.Bank},
		{r.codes.Receivable, &ids.Receivable},
		{r.codes.Payable, &ids.Payable},
		{r.codes.Sales, &ids.Sales},
		{r.codes.Purchases, &ids.Purchases},
		{r.codes.TaxPayable, &ids.TaxPayable},
		{r.codes.TaxReceivable, &ids.TaxReceivable},
	}
	for _, t := range targets {
		id, err := lookup(t.code)
		if err != nil {
			return nil, err
		}
		*t.dst = id
	}
	return ids, nil
}

// settlementAccount is the account money moves through for a payment method.
func (a *postingAccountIDs) settlementAccount(method domain.PaymentMethod) string {
	if method == domain.MethodCash {
		return a.Cash
	}
	return a.Bank
}

type entryBuilder struct {
	date    time.Time
	refType domain.ReferenceType
	refID   string
	desc    string
	now     time.Time
	userID  string
	entries []domain.LedgerEntry
}

// add appends a leg, skipping zero amounts.
func (b *entryBuilder) add(accountID string, contactID *string, side domain.EntryType, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	b.entries = append(b.entries, domain.LedgerEntry{
		LedgerEntryID:   uuid.NewString(),
		AccountID:       accountID,
		ContactID:       contactID,
		EntryType:       side,
		Amount:          amount,
		TransactionDate: b.date,
		ReferenceType:   b.refType,
		ReferenceID:     b.refID,
		Description:     b.desc,
		CreatedAt:       b.now,
		CreatedBy:       b.userID,
	})
}

func (b *entryBuilder) build() ([]domain.LedgerEntry, error) {
	if len(b.entries) == 0 {
		return nil, nil
	}
	if err := accounting.ValidateEntriesBalance(b.entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	return b.entries, nil
}

func documentLabel(doc domain.Document) string {
	switch doc.Kind {
	case domain.CustomerInvoice:
		return "Invoice " + doc.Number
	case domain.VendorBill:
		return "Bill " + doc.Number
	}
	return doc.Number
}

// documentPostings builds the ledger entries and stock movements of an issued bill or invoice.
//
//	invoice: DR receivable total, CR sales subtotal, CR output tax; stock OUT per line
//	bill:    DR purchases subtotal, DR input tax, CR payable total; stock IN per line
func documentPostings(doc domain.Document, accts *postingAccountIDs, userID string, now time.Time) (*domain.Postings, error) {
	contactID := doc.ContactID
	b := &entryBuilder{date: doc.DocumentDate, refID: doc.DocumentID, desc: documentLabel(doc), now: now, userID: userID}
	movementType := domain.StockIn

	switch doc.Kind {
	case domain.CustomerInvoice:
		b.refType = domain.RefCustomerInvoice
		b.add(accts.Receivable, &contactID, domain.Debit, doc.Total)
		b.add(accts.Sales, nil, domain.Credit, doc.Subtotal)
		b.add(accts.TaxPayable, nil, domain.Credit, doc.TaxAmount)
		movementType = domain.StockOut
	case domain.VendorBill:
		b.refType = domain.RefVendorBill
		b.add(accts.Purchases, nil, domain.Debit, doc.Subtotal)
		b.add(accts.TaxReceivable, nil, domain.Debit, doc.TaxAmount)
		b.add(accts.Payable, &contactID, domain.Credit, doc.Total)
	default:
		return nil, fmt.Errorf("%w: %s does not post to the ledger", apperrors.ErrInternal, doc.Kind)
	}

	entries, err := b.build()
	if err != nil {
		return nil, err
	}

	return &domain.Postings{
		Entries:   entries,
		Movements: lineMovements(doc, movementType, b.refType, doc.DocumentDate, userID, now),
	}, nil
}

// reversalPostings undoes documentPostings for a deleted bill or invoice. The reversal is dated on
// the day of deletion, or on the document date when that is still ahead, so it never precedes
// what it reverses.
func reversalPostings(doc domain.Document, accts *postingAccountIDs, userID string, now time.Time) (*domain.Postings, error) {
	original, err := documentPostings(doc, accts, userID, now)
	if err != nil {
		return nil, err
	}

	refType := domain.RefBillVoid
	if doc.Kind == domain.CustomerInvoice {
		refType = domain.RefInvoiceVoid
	}
	day := now.Truncate(24 * time.Hour)
	if doc.DocumentDate.After(day) {
		day = doc.DocumentDate
	}

	out := &domain.Postings{}
	for _, e := range original.Entries {
		e.LedgerEntryID = uuid.NewString()
		e.EntryType = e.EntryType.Opposite()
		e.TransactionDate = day
		e.ReferenceType = refType
		e.Description = "Void of " + e.Description
		out.Entries = append(out.Entries, e)
	}
	for _, m := range original.Movements {
		m.MovementID = uuid.NewString()
		if m.MovementType == domain.StockIn {
			m.MovementType = domain.StockOut
		} else {
			m.MovementType = domain.StockIn
		}
		m.MovementDate = day
		m.ReferenceType = refType
		out.Movements = append(out.Movements, m)
	}
	return out, nil
}

func lineMovements(doc domain.Document, movementType domain.MovementType, refType domain.ReferenceType, date time.Time, userID string, now time.Time) []domain.StockMovement {
	var movements []domain.StockMovement
	for _, item := range doc.Items {
		if !item.Quantity.IsPositive() {
			continue
		}
		movements = append(movements, domain.StockMovement{
			MovementID:    uuid.NewString(),
			ProductID:     item.ProductID,
			MovementType:  movementType,
			Quantity:      item.Quantity,
			MovementDate:  date,
			ReferenceType: refType,
			ReferenceID:   doc.DocumentID,
			Notes:         fmt.Sprintf("%s line %d", doc.Number, item.LineNo),
			CreatedAt:     now,
			CreatedBy:     userID,
		})
	}
	return movements
}

// paymentEntries builds the ledger entries of a payment.
//
//	invoice payment: DR cash/bank, CR receivable
//	bill payment:    DR payable, CR cash/bank
func paymentEntries(doc domain.Document, payment domain.Payment, accts *postingAccountIDs, now time.Time) ([]domain.LedgerEntry, error) {
	contactID := doc.ContactID
	settlement := accts.settlementAccount(payment.Method)
	b := &entryBuilder{
		date:   payment.PaymentDate,
		refID:  payment.PaymentID,
		desc:   fmt.Sprintf("Payment for %s", documentLabel(doc)),
		now:    now,
		userID: payment.CreatedBy,
	}

	switch doc.Kind {
	case domain.CustomerInvoice:
		b.refType = domain.RefInvoicePayment
		b.add(settlement, nil, domain.Debit, payment.Amount)
		b.add(accts.Receivable, &contactID, domain.Credit, payment.Amount)
	case domain.VendorBill:
		b.refType = domain.RefBillPayment
		b.add(accts.Payable, &contactID, domain.Debit, payment.Amount)
		b.add(settlement, nil, domain.Credit, payment.Amount)
	default:
		return nil, fmt.Errorf("%w: payments cannot be recorded against a %s", apperrors.ErrValidation, doc.Kind)
	}
	return b.build()
}

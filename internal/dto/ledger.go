package dto

import (
	"time"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerEntriesParams holds the query parameters of an account statement.
type ListLedgerEntriesParams struct {
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

type LedgerEntryResponse struct {
	LedgerEntryID   string               `json:"ledgerEntryID"`
	AccountID       string               `json:"accountID"`
	ContactID       *string              `json:"contactID"`
	EntryType       domain.EntryType     `json:"entryType"`
	Amount          decimal.Decimal      `json:"amount"`
	TransactionDate string               `json:"transactionDate"`
	ReferenceType   domain.ReferenceType `json:"referenceType"`
	ReferenceID     string               `json:"referenceID"`
	Description     string               `json:"description"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
}

type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		LedgerEntryID:   e.LedgerEntryID,
		AccountID:       e.AccountID,
		ContactID:       e.ContactID,
		EntryType:       e.EntryType,
		Amount:          e.Amount,
		TransactionDate: e.TransactionDate.Format(DateFormat),
		ReferenceType:   e.ReferenceType,
		ReferenceID:     e.ReferenceID,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

func ToListLedgerEntriesResponse(entries []domain.LedgerEntry, nextToken *string) ListLedgerEntriesResponse {
	out := ListLedgerEntriesResponse{Entries: make([]LedgerEntryResponse, len(entries)), NextToken: nextToken}
	for i := range entries {
		out.Entries[i] = ToLedgerEntryResponse(&entries[i])
	}
	return out
}

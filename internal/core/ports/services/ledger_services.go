package services

import (
	"context"

	"github.com/SscSPs/books_backend/internal/core/domain"
	"github.com/SscSPs/books_backend/internal/dto"
)

// LedgerSvc reads account statements.
type LedgerSvc interface {
	ListEntriesByAccount(ctx context.Context, accountID string, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error)
}

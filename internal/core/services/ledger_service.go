package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/utils/pagination"
)

type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.AccountReader
}

// NewLedgerService creates the account statement service
func NewLedgerService(repo portsrepo.LedgerRepository, accounts portsrepo.AccountReader) portssvc.LedgerSvc {
	return &ledgerService{BaseService: newBaseService(), ledgerRepo: repo, accountRepo: accounts}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// ListEntriesByAccount returns an account's entries newest first with a cursor to the next page.
func (s *ledgerService) ListEntriesByAccount(ctx context.Context, accountID string, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, *string, error) {
	if err := dto.Validate(params); err != nil {
		return nil, nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		s.LogUnexpected(ctx, err, "Account lookup failed", slog.String("account_id", accountID))
		return nil, nil, err
	}

	filter := portsrepo.LedgerFilter{Limit: params.Limit}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	var err error
	if filter.From, err = dto.ParseOptionalDate("from", &params.From); err != nil {
		return nil, nil, err
	}
	if filter.To, err = dto.ParseOptionalDate("to", &params.To); err != nil {
		return nil, nil, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, nil, apperrors.NewValidationError("from must not be after to")
	}
	if filter.After, err = pagination.DecodeOptionalToken(params.NextToken); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	entries, err := s.ledgerRepo.ListEntriesByAccount(ctx, accountID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	next := pagination.NextToken(len(entries), filter.Limit, func() pagination.Cursor {
		last := entries[filter.Limit-1]
		return pagination.Cursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.LedgerEntryID}
	})
	if len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, next, nil
}

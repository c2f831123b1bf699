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
	"github.com/google/uuid"
)

const defaultPageSize = 50

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new chart-of-accounts service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{BaseService: newBaseService(), accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	if req.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			s.LogUnexpected(ctx, err, "Parent account lookup failed", slog.String("parent_account_id", *req.ParentAccountID))
			return nil, fmt.Errorf("parent account: %w", err)
		}
	}

	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		ParentAccountID: req.ParentAccountID,
		Description:     req.Description,
		IsActive:        true,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogUnexpected(ctx, err, "Failed to save account", slog.String("code", account.Code))
		return nil, err
	}

	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a page of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	filter := portsrepo.AccountFilter{Limit: params.Limit, Offset: params.Offset}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if params.AccountType != "" {
		t := domain.AccountType(params.AccountType)
		filter.Type = &t
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", filter.Limit), slog.Int("offset", filter.Offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogUnexpected(ctx, err, "Failed to find account for update", slog.String("account_id", accountID))
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	switch {
	case req.ClearParent:
		account.ParentAccountID = nil
	case req.ParentAccountID != nil:
		if *req.ParentAccountID == accountID {
			return nil, apperrors.NewValidationError("an account cannot be its own parent")
		}
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			return nil, fmt.Errorf("parent account: %w", err)
		}
		account.ParentAccountID = req.ParentAccountID
	}

	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogUnexpected(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	return account, nil
}

// DeleteAccount removes an account. Accounts with ledger entries are protected by the schema.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogUnexpected(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	return nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/books_backend/internal/apperrors"
	"github.com/SscSPs/books_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/books_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/core/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:        "1020",
		Name:        "Petty Cash",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Code, createdAccount.Code)
	suite.Equal(req.AccountType, createdAccount.AccountType)
	suite.True(createdAccount.IsActive)
	suite.Equal(creatorUserID, createdAccount.CreatedBy)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "9000", Name: "Odd", AccountType: "CONTRA"}

	createdAccount, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "1011", Name: "Bank - Savings", AccountType: domain.Asset, ParentAccountID: &parentID}

	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(nil, apperrors.NewNotFoundError("account", parentID)).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash again", AccountType: domain.Asset}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_DefaultsAndTypeFilter() {
	ctx := context.Background()
	income := domain.Income
	expected := []domain.Account{{AccountID: uuid.NewString(), Code: "4000", Name: "Sales", AccountType: domain.Income}}

	suite.mockRepo.On("ListAccounts", ctx, portsrepo.AccountFilter{Type: &income, Limit: 50}).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, dto.ListAccountsParams{AccountType: "INCOME"})

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx, portsrepo.AccountFilter{Limit: 10, Offset: 20}).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, dto.ListAccountsParams{Limit: 10, Offset: 20})

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	accounts, err := suite.service.ListAccounts(ctx, dto.ListAccountsParams{})

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameAndDeactivate() {
	ctx := context.Background()
	testID := uuid.NewString()
	updaterUserID := uuid.NewString()
	initialTime := time.Now().Add(-time.Hour)

	original := &domain.Account{
		AccountID:   testID,
		Code:        "5100",
		Name:        "Original Name",
		AccountType: domain.Expense,
		IsActive:    true,
		AuditFields: domain.AuditFields{CreatedBy: "creator", LastUpdatedBy: "creator", CreatedAt: initialTime, LastUpdatedAt: initialTime},
	}

	newName := "Rent"
	inactive := false
	req := dto.UpdateAccountRequest{Name: &newName, IsActive: &inactive}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(original, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.AccountID == testID &&
			acc.Name == newName &&
			!acc.IsActive &&
			acc.Code == "5100" &&
			acc.LastUpdatedBy == updaterUserID &&
			acc.LastUpdatedAt.After(initialTime)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.False(updated.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SelfParent() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(&domain.Account{AccountID: testID}, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{ParentAccountID: &testID}, "user")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ClearParent() {
	ctx := context.Background()
	testID := uuid.NewString()
	parentID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(&domain.Account{AccountID: testID, ParentAccountID: &parentID}, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.ParentAccountID == nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{ClearParent: true}, "user")

	suite.Require().NoError(err)
	suite.Nil(updated.ParentAccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_InUse() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("DeleteAccount", ctx, testID).Return(apperrors.NewConflictError("account %s has ledger entries", testID)).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

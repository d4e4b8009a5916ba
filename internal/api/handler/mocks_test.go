package handler

import (
	"context"

	"github.com/finance-assistant/internal/domain/action"
	"github.com/finance-assistant/internal/domain/finance"
	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]finance.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Account), args.Error(1)
}

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter finance.TransactionFilter) ([]finance.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) Calculate(ctx context.Context, month, year int) (*finance.BudgetAnalysis, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.BudgetAnalysis), args.Error(1)
}

type MockActionService struct {
	mock.Mock
}

func (m *MockActionService) PreviewTransfer(ctx context.Context, fromAccountID, toAccountID string, amount float64, description string) (*action.Preview, error) {
	args := m.Called(ctx, fromAccountID, toAccountID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Preview), args.Error(1)
}

func (m *MockActionService) PreviewBillPayment(ctx context.Context, billID, accountID string, amount float64) (*action.Preview, error) {
	args := m.Called(ctx, billID, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Preview), args.Error(1)
}

func (m *MockActionService) PreviewInvestment(ctx context.Context, accountID, instrumentID string, amount float64) (*action.Preview, error) {
	args := m.Called(ctx, accountID, instrumentID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Preview), args.Error(1)
}

func (m *MockActionService) Execute(ctx context.Context, kind action.Kind, previewID, approvalToken string) (*action.Result, error) {
	args := m.Called(ctx, kind, previewID, approvalToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Result), args.Error(1)
}

type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) Record(ctx context.Context, actionID string, approved bool, notes string) (*action.Approval, error) {
	args := m.Called(ctx, actionID, approved, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Approval), args.Error(1)
}

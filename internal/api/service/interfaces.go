package service

import (
	"context"

	"github.com/finance-assistant/internal/domain/action"
	"github.com/finance-assistant/internal/domain/finance"
)

// AccountService defines the interface for account operations
type AccountService interface {
	// ListAccounts returns all accounts
	ListAccounts(ctx context.Context) ([]finance.Account, error)
}

// TransactionService defines the interface for transaction operations
type TransactionService interface {
	// ListTransactions returns transactions matching the filter, most recent first
	ListTransactions(ctx context.Context, filter finance.TransactionFilter) ([]finance.Transaction, error)
}

// BudgetService defines the interface for budget analysis
type BudgetService interface {
	// Calculate summarizes spending by category for the given month and
	// produces recommendations. Month and year are assumed validated.
	Calculate(ctx context.Context, month, year int) (*finance.BudgetAnalysis, error)
}

// ActionService defines the preview and execute operations shared by the
// three money-moving actions.
type ActionService interface {
	// PreviewTransfer synthesizes a transfer preview with the mock 1% fee.
	// Returns ErrMissingField or ErrInvalidAmount on invalid input.
	PreviewTransfer(ctx context.Context, fromAccountID, toAccountID string, amount float64, description string) (*action.Preview, error)

	// PreviewBillPayment synthesizes a bill payment preview with the payee
	// resolved from the bill directory and a due date seven days out.
	PreviewBillPayment(ctx context.Context, billID, accountID string, amount float64) (*action.Preview, error)

	// PreviewInvestment synthesizes an investment preview with compound
	// projections at the mock 7% annual return.
	PreviewInvestment(ctx context.Context, accountID, instrumentID string, amount float64) (*action.Preview, error)

	// Execute commits a previously previewed action. The preview must exist,
	// be unexpired, and match the kind; otherwise ErrPreviewNotFound.
	// The approval token is required but any non-empty value is accepted;
	// tokens are not bound to the preview they execute.
	Execute(ctx context.Context, kind action.Kind, previewID, approvalToken string) (*action.Result, error)
}

// ApprovalService defines the human-in-the-loop approval gate
type ApprovalService interface {
	// Record registers an approval decision for an action. An approval
	// token is issued only when the decision is affirmative.
	Record(ctx context.Context, actionID string, approved bool, notes string) (*action.Approval, error)
}

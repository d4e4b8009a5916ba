// Package finance defines the read-only financial data model: accounts,
// transactions, bills, and budget analysis. Data access goes through the
// DataSource interface so the in-memory mock can be swapped for a real store
// without touching the API or tool layers.
package finance

import "context"

// Account represents a bank account visible to the assistant.
// Balances are in whole currency units; the mock data set is dollars.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// Transaction represents a single account movement. Amount is signed:
// negative for debits, positive for credits. Date is an ISO calendar
// date (YYYY-MM-DD), which keeps range filters a lexical comparison.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	AccountID   string  `json:"accountId"`
}

// Bill represents a payable bill known to the payee directory.
type Bill struct {
	ID     string  `json:"id"`
	Payee  string  `json:"payee"`
	Amount float64 `json:"amount"`
}

// TransactionFilter narrows a transaction listing. Zero values mean
// "no constraint"; dates are ISO calendar dates (YYYY-MM-DD).
type TransactionFilter struct {
	AccountID string
	StartDate string
	EndDate   string
	Limit     int
}

// BudgetAnalysis summarizes spending for a calendar month.
type BudgetAnalysis struct {
	Month              int                `json:"month"`
	Year               int                `json:"year"`
	SpendingByCategory map[string]float64 `json:"spendingByCategory"`
	Recommendations    []string           `json:"recommendations"`
}

// DataSource provides read-only access to financial data.
type DataSource interface {
	// ListAccounts returns all accounts.
	ListAccounts(ctx context.Context) ([]Account, error)

	// ListTransactions returns transactions matching the filter,
	// most recent first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error)

	// GetBill returns the bill with the given ID, or nil when unknown.
	GetBill(ctx context.Context, id string) (*Bill, error)
}

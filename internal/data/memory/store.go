// Package memory provides an in-memory finance.DataSource seeded with demo
// data. The data is static and read-only, so concurrent access needs no
// locking.
package memory

import (
	"context"
	"sort"

	"github.com/finance-assistant/internal/domain/finance"
)

// Store is an in-memory, read-only data source.
type Store struct {
	accounts     []finance.Account
	transactions []finance.Transaction
	bills        map[string]finance.Bill
}

// NewStore creates a store seeded with the demo data set.
func NewStore() *Store {
	return NewStoreWithData(demoAccounts(), demoTransactions(), demoBills())
}

// NewStoreWithData creates a store backed by the given data. Intended for
// tests that need a controlled data set.
func NewStoreWithData(accounts []finance.Account, transactions []finance.Transaction, bills []finance.Bill) *Store {
	billsByID := make(map[string]finance.Bill, len(bills))
	for _, b := range bills {
		billsByID[b.ID] = b
	}
	return &Store{
		accounts:     accounts,
		transactions: transactions,
		bills:        billsByID,
	}
}

// ListAccounts returns all accounts.
func (s *Store) ListAccounts(_ context.Context) ([]finance.Account, error) {
	accounts := make([]finance.Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts, nil
}

// ListTransactions returns transactions matching the filter, most recent first.
func (s *Store) ListTransactions(_ context.Context, filter finance.TransactionFilter) ([]finance.Transaction, error) {
	filtered := make([]finance.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if filter.AccountID != "" && t.AccountID != filter.AccountID {
			continue
		}
		if filter.StartDate != "" && t.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && t.Date > filter.EndDate {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}

	return filtered, nil
}

// GetBill returns the bill with the given ID, or nil when unknown.
func (s *Store) GetBill(_ context.Context, id string) (*finance.Bill, error) {
	bill, ok := s.bills[id]
	if !ok {
		return nil, nil
	}
	return &bill, nil
}

package memory

import (
	"context"
	"testing"

	"github.com/finance-assistant/internal/domain/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	accounts := []finance.Account{
		{ID: "1", Name: "Main Checking", Type: "checking", Balance: 5000},
		{ID: "2", Name: "Savings", Type: "savings", Balance: 10000},
	}
	transactions := []finance.Transaction{
		{ID: "1", Date: "2025-04-26", Amount: -50, Description: "Grocery Store", Category: "Food", AccountID: "1"},
		{ID: "2", Date: "2025-04-25", Amount: -30, Description: "Gas Station", Category: "Transportation", AccountID: "1"},
		{ID: "3", Date: "2025-04-10", Amount: 500, Description: "Monthly Savings", Category: "Transfers", AccountID: "2"},
		{ID: "4", Date: "2025-03-28", Amount: -55, Description: "Grocery Store", Category: "Food", AccountID: "1"},
	}
	bills := []finance.Bill{
		{ID: "bill-001", Payee: "City Power & Light", Amount: 120},
	}
	return NewStoreWithData(accounts, transactions, bills)
}

func TestStore_ListAccounts(t *testing.T) {
	store := testStore()

	accounts, err := store.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Main Checking", accounts[0].Name)
	assert.Equal(t, 5000.0, accounts[0].Balance)
}

func TestStore_ListTransactions(t *testing.T) {
	store := testStore()
	ctx := context.Background()

	t.Run("NoFilter", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, finance.TransactionFilter{})
		require.NoError(t, err)
		assert.Len(t, txns, 4)
	})

	t.Run("ByAccount", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, finance.TransactionFilter{AccountID: "2"})
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "Monthly Savings", txns[0].Description)
	})

	t.Run("ByDateRange", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, finance.TransactionFilter{
			StartDate: "2025-04-01",
			EndDate:   "2025-04-30",
		})
		require.NoError(t, err)
		assert.Len(t, txns, 3)
	})

	t.Run("MostRecentFirst", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, finance.TransactionFilter{AccountID: "1"})
		require.NoError(t, err)
		require.Len(t, txns, 3)
		assert.Equal(t, "2025-04-26", txns[0].Date)
		assert.Equal(t, "2025-03-28", txns[2].Date)
	})

	t.Run("Limit", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, finance.TransactionFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, txns, 2)
	})
}

func TestStore_GetBill(t *testing.T) {
	store := testStore()
	ctx := context.Background()

	bill, err := store.GetBill(ctx, "bill-001")
	require.NoError(t, err)
	require.NotNil(t, bill)
	assert.Equal(t, "City Power & Light", bill.Payee)

	missing, err := store.GetBill(ctx, "bill-999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

package memory

import "github.com/finance-assistant/internal/domain/finance"

// Demo data stands in for a real banking backend.

func demoAccounts() []finance.Account {
	return []finance.Account{
		{ID: "1", Name: "Main Checking", Type: "checking", Balance: 5000.00},
		{ID: "2", Name: "Savings", Type: "savings", Balance: 10000.00},
	}
}

func demoTransactions() []finance.Transaction {
	return []finance.Transaction{
		{ID: "1", Date: "2025-04-26", Amount: -50.00, Description: "Grocery Store", Category: "Food", AccountID: "1"},
		{ID: "2", Date: "2025-04-25", Amount: -30.00, Description: "Gas Station", Category: "Transportation", AccountID: "1"},
		{ID: "3", Date: "2025-04-22", Amount: -120.00, Description: "Electric Bill", Category: "Utilities", AccountID: "1"},
		{ID: "4", Date: "2025-04-20", Amount: -45.50, Description: "Restaurant", Category: "Food", AccountID: "1"},
		{ID: "5", Date: "2025-04-18", Amount: -15.99, Description: "Streaming Service", Category: "Entertainment", AccountID: "1"},
		{ID: "6", Date: "2025-04-15", Amount: 2500.00, Description: "Salary", Category: "Income", AccountID: "1"},
		{ID: "7", Date: "2025-04-12", Amount: -60.00, Description: "Concert Tickets", Category: "Entertainment", AccountID: "1"},
		{ID: "8", Date: "2025-04-10", Amount: 500.00, Description: "Monthly Savings", Category: "Transfers", AccountID: "2"},
		{ID: "9", Date: "2025-04-05", Amount: -80.00, Description: "Water & Sewer", Category: "Utilities", AccountID: "1"},
		{ID: "10", Date: "2025-03-28", Amount: -55.00, Description: "Grocery Store", Category: "Food", AccountID: "1"},
	}
}

func demoBills() []finance.Bill {
	return []finance.Bill{
		{ID: "bill-001", Payee: "City Power & Light", Amount: 120.00},
		{ID: "bill-002", Payee: "Metro Water Utility", Amount: 80.00},
		{ID: "bill-003", Payee: "Fiber Internet Co", Amount: 65.00},
	}
}

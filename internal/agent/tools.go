package agent

import "github.com/finance-assistant/internal/domain/action"

// FinanceToolDefinitions returns the definitions for all finance tools.
// Read tools are dispatched directly against the data API; money-moving
// tools require user confirmation and run through the preview/approval/
// execute protocol.
func FinanceToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// Read operations
		{
			Name:        "check_balance",
			Description: "View current balances for all accounts.",
			InputSchema: ObjectSchema(map[string]interface{}{}),
		},
		{
			Name:        "view_transaction_history",
			Description: "Get recent transactions with optional filtering by account and date range.",
			InputSchema: ObjectSchema(map[string]interface{}{
				"accountId": StringProperty("Optional account ID to filter transactions"),
				"startDate": StringProperty("Optional start date (YYYY-MM-DD)"),
				"endDate":   StringProperty("Optional end date (YYYY-MM-DD)"),
				"limit":     IntegerProperty("Optional limit for number of transactions"),
			}),
		},
		{
			Name:        "calculate_budget",
			Description: "Calculate budget insights based on spending patterns.",
			InputSchema: ObjectSchema(map[string]interface{}{
				"month": IntegerProperty("Month (1-12)"),
				"year":  IntegerProperty("Year (e.g., 2025)"),
			}, "month", "year"),
		},

		// Money-moving operations (require confirmation)
		{
			Name:                 "transfer_money",
			Description:          "Create a money transfer between two accounts. Requires confirmation.",
			RequiresConfirmation: true,
			SummaryTemplate:      "Transfer ${{.amount}} from account {{.fromAccountId}} to account {{.toAccountId}}",
			InputSchema: ObjectSchema(map[string]interface{}{
				"fromAccountId": StringProperty("Source account ID"),
				"toAccountId":   StringProperty("Destination account ID"),
				"amount":        NumberProperty("Amount to transfer"),
				"description":   StringProperty("Optional description for the transfer"),
			}, "fromAccountId", "toAccountId", "amount"),
		},
		{
			Name:                 "pay_bill",
			Description:          "Make a payment for an existing bill. Requires confirmation.",
			RequiresConfirmation: true,
			SummaryTemplate:      "Pay ${{.amount}} toward bill {{.billId}} from account {{.accountId}}",
			InputSchema: ObjectSchema(map[string]interface{}{
				"billId":    StringProperty("ID of the bill to pay"),
				"accountId": StringProperty("Account ID to pay the bill from"),
				"amount":    NumberProperty("Amount to pay"),
			}, "billId", "accountId", "amount"),
		},
		{
			Name:                 "invest_money",
			Description:          "Make an investment in a financial instrument. Requires confirmation.",
			RequiresConfirmation: true,
			SummaryTemplate:      "Invest ${{.amount}} in {{.instrumentId}} from account {{.accountId}}",
			InputSchema: ObjectSchema(map[string]interface{}{
				"accountId":    StringProperty("Account ID to invest from"),
				"instrumentId": StringProperty("ID of the investment instrument"),
				"amount":       NumberProperty("Amount to invest"),
			}, "accountId", "instrumentId", "amount"),
		},
	}
}

// KindForTool maps a money-moving tool name to its action kind.
func KindForTool(name string) (action.Kind, bool) {
	switch name {
	case "transfer_money":
		return action.KindTransfer, true
	case "pay_bill":
		return action.KindBillPayment, true
	case "invest_money":
		return action.KindInvestment, true
	default:
		return "", false
	}
}

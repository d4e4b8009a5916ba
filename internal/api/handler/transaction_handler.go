package handler

import (
	"log/slog"

	"github.com/finance-assistant/internal/api/service"
	"github.com/finance-assistant/internal/domain/finance"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// List returns transactions, optionally filtered by account, date range, and limit
func (h *TransactionHandler) List(c *gin.Context) {
	var params TransactionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.Error("Invalid transaction filter", "error", err)
		RespondBadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), finance.TransactionFilter{
		AccountID: params.AccountID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Limit:     params.Limit,
	})
	if err != nil {
		h.logger.Error("Failed to list transactions", "error", err)
		RespondInternalError(c, "Failed to fetch transactions")
		return
	}

	if transactions == nil {
		transactions = []finance.Transaction{}
	}
	RespondOK(c, transactions)
}

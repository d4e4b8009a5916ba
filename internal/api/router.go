package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/finance-assistant/internal/api/handler"
	"github.com/finance-assistant/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
	budgetHandler *handler.BudgetHandler,
	actionHandler *handler.ActionHandler,
	approvalHandler *handler.ApprovalHandler,
	chatHandler gin.HandlerFunc,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	api := r.Group("/api")
	{
		// Read-only data endpoints
		api.GET("/accounts", accountHandler.List)
		api.GET("/transactions", transactionHandler.List)
		api.GET("/budget/calculate", budgetHandler.Calculate)

		// Money-moving actions: preview then execute
		transfers := api.Group("/transfers")
		{
			transfers.POST("/preview", actionHandler.PreviewTransfer)
			transfers.POST("/execute", actionHandler.ExecuteTransfer)
		}

		bills := api.Group("/bills")
		{
			bills.POST("/preview", actionHandler.PreviewBillPayment)
			bills.POST("/execute", actionHandler.ExecuteBillPayment)
		}

		investments := api.Group("/investments")
		{
			investments.POST("/preview", actionHandler.PreviewInvestment)
			investments.POST("/execute", actionHandler.ExecuteInvestment)
		}

		// Human-in-the-loop approval gate
		api.POST("/approvals", approvalHandler.Record)

		// Agent chat over WebSocket; only mounted when an agent is configured
		if chatHandler != nil {
			api.GET("/chat", chatHandler)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}

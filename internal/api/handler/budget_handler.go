package handler

import (
	"log/slog"
	"strconv"

	"github.com/finance-assistant/internal/api/service"
	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for budget analysis
type BudgetHandler struct {
	budgetService service.BudgetService
	logger        *slog.Logger
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(logger *slog.Logger, budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// Calculate returns a budget analysis for the requested month.
// Month must be 1-12 and year 2020 or later; anything else is a 400.
func (h *BudgetHandler) Calculate(c *gin.Context) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")

	if monthStr == "" || yearStr == "" {
		RespondBadRequest(c, "Month and year are required parameters")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		RespondBadRequest(c, "Month must be a number between 1 and 12")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2020 {
		RespondBadRequest(c, "Year must be 2020 or later")
		return
	}

	analysis, err := h.budgetService.Calculate(c.Request.Context(), month, year)
	if err != nil {
		h.logger.Error("Failed to calculate budget", "month", month, "year", year, "error", err)
		RespondInternalError(c, "Failed to calculate budget insights")
		return
	}

	RespondOK(c, analysis)
}

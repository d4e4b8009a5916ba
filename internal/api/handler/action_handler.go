package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/finance-assistant/internal/api/service"
	"github.com/finance-assistant/internal/domain/action"
	"github.com/gin-gonic/gin"
)

// ActionHandler handles the preview and execute endpoints for the three
// money-moving actions. The protocol is identical across kinds; only the
// request shapes and preview payloads differ.
type ActionHandler struct {
	actionService service.ActionService
	logger        *slog.Logger
}

// NewActionHandler creates a new action handler
func NewActionHandler(logger *slog.Logger, actionService service.ActionService) *ActionHandler {
	return &ActionHandler{
		actionService: actionService,
		logger:        logger,
	}
}

// PreviewTransfer creates a provisional transfer with the mock 1% fee
func (h *ActionHandler) PreviewTransfer(c *gin.Context) {
	var req TransferPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Missing required fields")
		return
	}

	preview, err := h.actionService.PreviewTransfer(c.Request.Context(), req.FromAccountID, req.ToAccountID, req.Amount, req.Description)
	if err != nil {
		h.respondPreviewError(c, err, "Failed to create transfer preview")
		return
	}

	details := preview.Details.(*action.TransferDetails)
	RespondOK(c, TransferPreviewResponse{
		ID:            preview.ID,
		FromAccountID: details.FromAccountID,
		ToAccountID:   details.ToAccountID,
		Amount:        details.Amount,
		Description:   details.Description,
		Fees:          details.Fees,
		Timestamp:     preview.CreatedAt.Format(time.RFC3339),
	})
}

// ExecuteTransfer commits a previously previewed transfer
func (h *ActionHandler) ExecuteTransfer(c *gin.Context) {
	var req ExecuteTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Missing required fields")
		return
	}

	h.execute(c, action.KindTransfer, req.TransferPreviewID, req.ApprovalToken, "Failed to execute transfer")
}

// PreviewBillPayment creates a provisional bill payment
func (h *ActionHandler) PreviewBillPayment(c *gin.Context) {
	var req BillPaymentPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Missing required fields")
		return
	}

	preview, err := h.actionService.PreviewBillPayment(c.Request.Context(), req.BillID, req.AccountID, req.Amount)
	if err != nil {
		h.respondPreviewError(c, err, "Failed to create bill payment preview")
		return
	}

	details := preview.Details.(*action.BillPaymentDetails)
	RespondOK(c, BillPaymentPreviewResponse{
		ID:        preview.ID,
		BillID:    details.BillID,
		AccountID: details.AccountID,
		Amount:    details.Amount,
		Payee:     details.Payee,
		DueDate:   details.DueDate.Format(time.RFC3339),
		Timestamp: preview.CreatedAt.Format(time.RFC3339),
	})
}

// ExecuteBillPayment commits a previously previewed bill payment
func (h *ActionHandler) ExecuteBillPayment(c *gin.Context) {
	var req ExecuteBillPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Missing required fields")
		return
	}

	h.execute(c, action.KindBillPayment, req.BillPaymentPreviewID, req.ApprovalToken, "Failed to execute bill payment")
}

// PreviewInvestment creates a provisional investment with growth projections
func (h *ActionHandler) PreviewInvestment(c *gin.Context) {
	var req InvestmentPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Missing required fields")
		return
	}

	preview, err := h.actionService.PreviewInvestment(c.Request.Context(), req.AccountID, req.InstrumentID, req.Amount)
	if err != nil {
		h.respondPreviewError(c, err, "Failed to create investment preview")
		return
	}

	details := preview.Details.(*action.InvestmentDetails)
	RespondOK(c, InvestmentPreviewResponse{
		ID:           preview.ID,
		AccountID:    details.AccountID,
		InstrumentID: details.InstrumentID,
		Amount:       details.Amount,
		ProjectedReturns: ProjectedReturnsResponse{
			OneYear:  details.Projected.OneYear,
			FiveYear: details.Projected.FiveYear,
			TenYear:  details.Projected.TenYear,
		},
		Timestamp: preview.CreatedAt.Format(time.RFC3339),
	})
}

// ExecuteInvestment commits a previously previewed investment
func (h *ActionHandler) ExecuteInvestment(c *gin.Context) {
	var req ExecuteInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Missing required fields")
		return
	}

	h.execute(c, action.KindInvestment, req.InvestmentPreviewID, req.ApprovalToken, "Failed to execute investment")
}

// execute is the shared execute path: resolve the preview, produce the
// terminal record, map domain errors to the wire
func (h *ActionHandler) execute(c *gin.Context, kind action.Kind, previewID, approvalToken, failureMessage string) {
	result, err := h.actionService.Execute(c.Request.Context(), kind, previewID, approvalToken)
	if err != nil {
		var missing action.ErrMissingField
		if errors.As(err, &missing) {
			RespondBadRequest(c, "Missing required fields")
			return
		}
		var notFound action.ErrPreviewNotFound
		if errors.As(err, &notFound) {
			RespondBadRequest(c, "Preview not found or expired")
			return
		}
		h.logger.Error("Failed to execute action", "kind", string(kind), "preview_id", previewID, "error", err)
		RespondInternalError(c, failureMessage)
		return
	}

	RespondOK(c, ExecuteResponse{
		ID:                 result.ID,
		PreviewID:          result.PreviewID,
		Status:             string(result.Status),
		ConfirmationNumber: result.ConfirmationNumber,
		ExecutedAt:         result.ExecutedAt.Format(time.RFC3339),
	})
}

// respondPreviewError maps preview validation errors to 400 and everything else to 500
func (h *ActionHandler) respondPreviewError(c *gin.Context, err error, failureMessage string) {
	var missing action.ErrMissingField
	if errors.As(err, &missing) {
		RespondBadRequest(c, "Missing required fields")
		return
	}
	if errors.Is(err, action.ErrInvalidAmount) {
		RespondBadRequest(c, "Amount must be positive")
		return
	}
	h.logger.Error("Failed to create preview", "error", err)
	RespondInternalError(c, failureMessage)
}

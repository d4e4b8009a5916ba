package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/finance-assistant/internal/api/service"
	"github.com/finance-assistant/internal/domain/action"
	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles HTTP requests for the approval gate
type ApprovalHandler struct {
	approvalService service.ApprovalService
	logger          *slog.Logger
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(logger *slog.Logger, approvalService service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: approvalService,
		logger:          logger,
	}
}

// Record registers a human approval decision; an approval token is
// returned only when the decision is affirmative
func (h *ApprovalHandler) Record(c *gin.Context) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Missing required fields")
		return
	}

	approval, err := h.approvalService.Record(c.Request.Context(), req.ActionID, *req.Approved, req.Notes)
	if err != nil {
		var missing action.ErrMissingField
		if errors.As(err, &missing) {
			RespondBadRequest(c, "Missing required fields")
			return
		}
		h.logger.Error("Failed to record approval", "action_id", req.ActionID, "error", err)
		RespondInternalError(c, "Failed to process approval")
		return
	}

	RespondOK(c, ApprovalResponse{
		ActionID:      approval.ActionID,
		Approved:      approval.Approved,
		Timestamp:     approval.Timestamp.Format(time.RFC3339),
		ApprovalToken: approval.Token,
		Notes:         approval.Notes,
	})
}

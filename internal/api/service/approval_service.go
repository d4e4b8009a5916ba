package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-assistant/internal/domain/action"
	"github.com/finance-assistant/internal/platform/token"
)

// ApprovalServiceImpl implements the ApprovalService interface
type ApprovalServiceImpl struct {
	logger *slog.Logger
}

// NewApprovalService creates a new approval service
func NewApprovalService(logger *slog.Logger) ApprovalService {
	return &ApprovalServiceImpl{
		logger: logger,
	}
}

// Record registers an approval decision. A token is issued only on approval;
// a rejection is echoed back without one.
func (s *ApprovalServiceImpl) Record(ctx context.Context, actionID string, approved bool, notes string) (*action.Approval, error) {
	if actionID == "" {
		return nil, action.ErrMissingField{Field: "actionId"}
	}

	approval := &action.Approval{
		ActionID:  actionID,
		Approved:  approved,
		Notes:     notes,
		Timestamp: time.Now(),
	}
	if approved {
		approval.Token = token.NewApprovalToken()
	}

	s.logger.Info("Approval decision recorded",
		"action_id", actionID,
		"approved", approved,
	)
	return approval, nil
}

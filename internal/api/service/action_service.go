package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/finance-assistant/internal/domain/action"
	"github.com/finance-assistant/internal/domain/finance"
	"github.com/finance-assistant/internal/platform/store"
	"github.com/finance-assistant/internal/platform/token"
	"github.com/google/uuid"
)

const (
	// transferFeeRate is the mock flat transfer fee.
	transferFeeRate = 0.01

	// annualReturnRate is the mock annual return used for investment projections.
	annualReturnRate = 1.07

	// billDueWindow is the default due date offset for a previewed bill payment.
	billDueWindow = 7 * 24 * time.Hour

	// fallbackPayee is used when the bill is not in the payee directory.
	fallbackPayee = "Mock Utility Company"
)

// ActionServiceImpl implements the ActionService interface
type ActionServiceImpl struct {
	data     finance.DataSource
	previews *store.PreviewStore
	logger   *slog.Logger
}

// NewActionService creates a new action service
func NewActionService(logger *slog.Logger, data finance.DataSource, previews *store.PreviewStore) ActionService {
	return &ActionServiceImpl{
		data:     data,
		previews: previews,
		logger:   logger,
	}
}

// PreviewTransfer synthesizes a transfer preview with the mock 1% fee
func (s *ActionServiceImpl) PreviewTransfer(ctx context.Context, fromAccountID, toAccountID string, amount float64, description string) (*action.Preview, error) {
	if fromAccountID == "" {
		return nil, action.ErrMissingField{Field: "fromAccountId"}
	}
	if toAccountID == "" {
		return nil, action.ErrMissingField{Field: "toAccountId"}
	}
	if amount <= 0 {
		return nil, action.ErrInvalidAmount
	}

	preview := s.storePreview(action.KindTransfer, &action.TransferDetails{
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Description:   description,
		Fees:          roundToCents(amount * transferFeeRate),
	})

	s.logger.Info("Transfer preview created",
		"preview_id", preview.ID,
		"from_account_id", fromAccountID,
		"to_account_id", toAccountID,
		"amount", amount,
	)
	return preview, nil
}

// PreviewBillPayment synthesizes a bill payment preview
func (s *ActionServiceImpl) PreviewBillPayment(ctx context.Context, billID, accountID string, amount float64) (*action.Preview, error) {
	if billID == "" {
		return nil, action.ErrMissingField{Field: "billId"}
	}
	if accountID == "" {
		return nil, action.ErrMissingField{Field: "accountId"}
	}
	if amount <= 0 {
		return nil, action.ErrInvalidAmount
	}

	payee := fallbackPayee
	bill, err := s.data.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill != nil {
		payee = bill.Payee
	}

	preview := s.storePreview(action.KindBillPayment, &action.BillPaymentDetails{
		BillID:    billID,
		AccountID: accountID,
		Amount:    amount,
		Payee:     payee,
		DueDate:   time.Now().Add(billDueWindow),
	})

	s.logger.Info("Bill payment preview created",
		"preview_id", preview.ID,
		"bill_id", billID,
		"account_id", accountID,
		"amount", amount,
	)
	return preview, nil
}

// PreviewInvestment synthesizes an investment preview with compound projections
func (s *ActionServiceImpl) PreviewInvestment(ctx context.Context, accountID, instrumentID string, amount float64) (*action.Preview, error) {
	if accountID == "" {
		return nil, action.ErrMissingField{Field: "accountId"}
	}
	if instrumentID == "" {
		return nil, action.ErrMissingField{Field: "instrumentId"}
	}
	if amount <= 0 {
		return nil, action.ErrInvalidAmount
	}

	preview := s.storePreview(action.KindInvestment, &action.InvestmentDetails{
		AccountID:    accountID,
		InstrumentID: instrumentID,
		Amount:       amount,
		Projected: action.ProjectedReturns{
			OneYear:  amount * annualReturnRate,
			FiveYear: amount * math.Pow(annualReturnRate, 5),
			TenYear:  amount * math.Pow(annualReturnRate, 10),
		},
	})

	s.logger.Info("Investment preview created",
		"preview_id", preview.ID,
		"account_id", accountID,
		"instrument_id", instrumentID,
		"amount", amount,
	)
	return preview, nil
}

// Execute commits a previously previewed action. The preview must exist and
// match the kind; the approval token must be present but is not bound to the
// preview id.
func (s *ActionServiceImpl) Execute(ctx context.Context, kind action.Kind, previewID, approvalToken string) (*action.Result, error) {
	if previewID == "" {
		return nil, action.ErrMissingField{Field: "previewId"}
	}
	if approvalToken == "" {
		return nil, action.ErrMissingField{Field: "approvalToken"}
	}

	preview, err := s.previews.Get(previewID, kind)
	if err != nil {
		s.logger.Warn("Execute rejected: unknown preview", "preview_id", previewID, "kind", string(kind))
		return nil, err
	}

	result := &action.Result{
		ID:                 uuid.New().String(),
		PreviewID:          preview.ID,
		Kind:               kind,
		Status:             action.StatusCompleted,
		ConfirmationNumber: token.NewConfirmationNumber(),
		ExecutedAt:         time.Now(),
	}

	s.logger.Info("Action executed",
		"result_id", result.ID,
		"preview_id", preview.ID,
		"kind", string(kind),
		"confirmation_number", result.ConfirmationNumber,
	)
	return result, nil
}

// storePreview assigns a fresh opaque id and records the preview for its TTL window
func (s *ActionServiceImpl) storePreview(kind action.Kind, details any) *action.Preview {
	preview := &action.Preview{
		ID:        uuid.New().String(),
		Kind:      kind,
		CreatedAt: time.Now(),
		Details:   details,
	}
	s.previews.Put(preview)
	return preview
}

// roundToCents rounds to two decimal places
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

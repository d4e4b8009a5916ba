package service

import (
	"context"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/finance-assistant/internal/data/memory"
	"github.com/finance-assistant/internal/domain/action"
	"github.com/finance-assistant/internal/domain/finance"
	"github.com/finance-assistant/internal/platform/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActionService() ActionService {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	data := memory.NewStoreWithData(
		nil,
		nil,
		[]finance.Bill{{ID: "bill-001", Payee: "City Power & Light", Amount: 120}},
	)
	previews := store.NewPreviewStore(time.Minute, time.Minute)
	return NewActionService(logger, data, previews)
}

func TestActionService_PreviewTransfer(t *testing.T) {
	svc := newTestActionService()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		preview, err := svc.PreviewTransfer(ctx, "1", "2", 100, "rent")
		require.NoError(t, err)

		assert.NotEmpty(t, preview.ID)
		assert.Equal(t, action.KindTransfer, preview.Kind)

		details := preview.Details.(*action.TransferDetails)
		assert.Equal(t, "1", details.FromAccountID)
		assert.Equal(t, "2", details.ToAccountID)
		assert.Equal(t, 100.0, details.Amount)
		assert.Equal(t, "rent", details.Description)
		assert.Equal(t, 1.00, details.Fees)
	})

	t.Run("FeeRoundsToCents", func(t *testing.T) {
		preview, err := svc.PreviewTransfer(ctx, "1", "2", 123.45, "")
		require.NoError(t, err)

		details := preview.Details.(*action.TransferDetails)
		assert.Equal(t, 1.23, details.Fees)
	})

	t.Run("DistinctIDs", func(t *testing.T) {
		// Previews are not content-addressed: identical input yields fresh ids.
		first, err := svc.PreviewTransfer(ctx, "1", "2", 100, "")
		require.NoError(t, err)
		second, err := svc.PreviewTransfer(ctx, "1", "2", 100, "")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("MissingFromAccount", func(t *testing.T) {
		_, err := svc.PreviewTransfer(ctx, "", "2", 100, "")
		var missing action.ErrMissingField
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "fromAccountId", missing.Field)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		_, err := svc.PreviewTransfer(ctx, "1", "2", 0, "")
		assert.ErrorIs(t, err, action.ErrInvalidAmount)

		_, err = svc.PreviewTransfer(ctx, "1", "2", -5, "")
		assert.ErrorIs(t, err, action.ErrInvalidAmount)
	})
}

func TestActionService_PreviewBillPayment(t *testing.T) {
	svc := newTestActionService()
	ctx := context.Background()

	t.Run("KnownBill", func(t *testing.T) {
		preview, err := svc.PreviewBillPayment(ctx, "bill-001", "1", 120)
		require.NoError(t, err)

		details := preview.Details.(*action.BillPaymentDetails)
		assert.Equal(t, "City Power & Light", details.Payee)

		// Due date defaults to seven days out.
		expected := time.Now().Add(7 * 24 * time.Hour)
		assert.WithinDuration(t, expected, details.DueDate, time.Minute)
	})

	t.Run("UnknownBillFallsBackToPlaceholderPayee", func(t *testing.T) {
		preview, err := svc.PreviewBillPayment(ctx, "bill-999", "1", 50)
		require.NoError(t, err)

		details := preview.Details.(*action.BillPaymentDetails)
		assert.Equal(t, "Mock Utility Company", details.Payee)
	})

	t.Run("MissingBillID", func(t *testing.T) {
		_, err := svc.PreviewBillPayment(ctx, "", "1", 50)
		var missing action.ErrMissingField
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "billId", missing.Field)
	})
}

func TestActionService_PreviewInvestment(t *testing.T) {
	svc := newTestActionService()
	ctx := context.Background()

	preview, err := svc.PreviewInvestment(ctx, "1", "VTSAX", 1000)
	require.NoError(t, err)

	details := preview.Details.(*action.InvestmentDetails)
	assert.InDelta(t, 1000*1.07, details.Projected.OneYear, 1e-9)
	assert.InDelta(t, 1000*math.Pow(1.07, 5), details.Projected.FiveYear, 1e-9)
	assert.InDelta(t, 1000*math.Pow(1.07, 10), details.Projected.TenYear, 1e-9)
}

func TestActionService_Execute(t *testing.T) {
	svc := newTestActionService()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		preview, err := svc.PreviewTransfer(ctx, "1", "2", 100, "")
		require.NoError(t, err)

		result, err := svc.Execute(ctx, action.KindTransfer, preview.ID, "any-token")
		require.NoError(t, err)

		assert.NotEmpty(t, result.ID)
		assert.Equal(t, preview.ID, result.PreviewID)
		assert.Equal(t, action.StatusCompleted, result.Status)
		assert.NotEmpty(t, result.ConfirmationNumber)
		assert.WithinDuration(t, time.Now(), result.ExecutedAt, time.Minute)
	})

	t.Run("MissingPreviewID", func(t *testing.T) {
		_, err := svc.Execute(ctx, action.KindTransfer, "", "tok")
		var missing action.ErrMissingField
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("MissingApprovalToken", func(t *testing.T) {
		preview, err := svc.PreviewTransfer(ctx, "1", "2", 100, "")
		require.NoError(t, err)

		_, err = svc.Execute(ctx, action.KindTransfer, preview.ID, "")
		var missing action.ErrMissingField
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "approvalToken", missing.Field)
	})

	t.Run("UnknownPreview", func(t *testing.T) {
		_, err := svc.Execute(ctx, action.KindTransfer, "nope", "tok")
		var notFound action.ErrPreviewNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("KindMismatch", func(t *testing.T) {
		preview, err := svc.PreviewInvestment(ctx, "1", "VTSAX", 500)
		require.NoError(t, err)

		_, err = svc.Execute(ctx, action.KindBillPayment, preview.ID, "tok")
		var notFound action.ErrPreviewNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

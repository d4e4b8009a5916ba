package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finance-assistant/internal/api/handler"
	"github.com/finance-assistant/internal/api/service"
	"github.com/finance-assistant/internal/data/memory"
	"github.com/finance-assistant/internal/platform/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full router against the in-memory demo data,
// exercising the same path production traffic takes.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	data := memory.NewStore()
	previews := store.NewPreviewStore(time.Minute, time.Minute)

	accountHandler := handler.NewAccountHandler(log, service.NewAccountService(data))
	transactionHandler := handler.NewTransactionHandler(log, service.NewTransactionService(data))
	budgetHandler := handler.NewBudgetHandler(log, service.NewBudgetService(data))
	actionHandler := handler.NewActionHandler(log, service.NewActionService(log, data, previews))
	approvalHandler := handler.NewApprovalHandler(log, service.NewApprovalService(log))

	r := gin.New()
	setupRouter(log, r, accountHandler, transactionHandler, budgetHandler, actionHandler, approvalHandler, nil)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_TransferPreviewThenExecute(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/transfers/preview", gin.H{
		"fromAccountId": "1",
		"toAccountId":   "2",
		"amount":        100,
		"description":   "Test transfer",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var preview map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	assert.InDelta(t, 1.00, preview["fees"], 0.001)
	previewID, ok := preview["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, previewID)

	w = doJSON(t, r, http.MethodPost, "/api/transfers/execute", gin.H{
		"transferPreviewId": previewID,
		"approvalToken":     "x",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "completed", result["status"])
	assert.Equal(t, previewID, result["previewId"])
	assert.NotEmpty(t, result["confirmationNumber"])
}

func TestRouter_ExecuteRejectsWrongKindPreview(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/transfers/preview", gin.H{
		"fromAccountId": "1",
		"toAccountId":   "2",
		"amount":        50,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var preview map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	previewID := preview["id"].(string)

	// A transfer preview cannot be executed as a bill payment
	w = doJSON(t, r, http.MethodPost, "/api/bills/execute", gin.H{
		"billPaymentPreviewId": previewID,
		"approvalToken":        "x",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Preview not found or expired", body["error"])
}

func TestRouter_HealthEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_TransactionsFilterByAccount(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/transactions?accountId=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var transactions []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
	require.NotEmpty(t, transactions)
	for _, tx := range transactions {
		assert.Equal(t, "2", tx["accountId"])
	}
}

package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/finance-assistant/internal/domain/action"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApprovalRouter(mockService *MockApprovalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewApprovalHandler(testLogger(), mockService)
	r := gin.New()
	r.POST("/api/approvals", h.Record)
	return r
}

func TestApprovalHandler_Record(t *testing.T) {
	t.Run("Approved", func(t *testing.T) {
		mockService := new(MockApprovalService)
		mockService.On("Record", mock.Anything, "act-1", true, "looks fine").Return(&action.Approval{
			ActionID:  "act-1",
			Approved:  true,
			Notes:     "looks fine",
			Token:     "tok-123",
			Timestamp: time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC),
		}, nil)

		r := setupApprovalRouter(mockService)
		w := postJSON(t, r, "/api/approvals", gin.H{
			"actionId": "act-1",
			"approved": true,
			"notes":    "looks fine",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp ApprovalResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Approved)
		assert.Equal(t, "tok-123", resp.ApprovalToken)
		mockService.AssertExpectations(t)
	})

	t.Run("RejectedOmitsToken", func(t *testing.T) {
		mockService := new(MockApprovalService)
		mockService.On("Record", mock.Anything, "act-2", false, "").Return(&action.Approval{
			ActionID:  "act-2",
			Approved:  false,
			Timestamp: time.Now(),
		}, nil)

		r := setupApprovalRouter(mockService)
		w := postJSON(t, r, "/api/approvals", gin.H{
			"actionId": "act-2",
			"approved": false,
		})

		require.Equal(t, http.StatusOK, w.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, false, raw["approved"])
		assert.NotContains(t, raw, "approvalToken")
		mockService.AssertExpectations(t)
	})

	t.Run("MissingApproved", func(t *testing.T) {
		mockService := new(MockApprovalService)
		r := setupApprovalRouter(mockService)
		w := postJSON(t, r, "/api/approvals", gin.H{"actionId": "act-3"})

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Missing required fields", body.Error)
		mockService.AssertNotCalled(t, "Record")
	})
}

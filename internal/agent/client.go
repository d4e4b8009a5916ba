package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/finance-assistant/internal/domain/action"
)

// APIError is a non-2xx response from the finance API. Message carries the
// error field from the response body when present, falling back to the HTTP
// status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ApprovalDecision is the approval gate's response.
type ApprovalDecision struct {
	ActionID      string `json:"actionId"`
	Approved      bool   `json:"approved"`
	Timestamp     string `json:"timestamp"`
	ApprovalToken string `json:"approvalToken,omitempty"`
}

// PreviewRef identifies a stored action preview plus its full payload.
type PreviewRef struct {
	ID   string
	Body json.RawMessage
}

// ExecutionResult is the terminal record of an executed action.
type ExecutionResult struct {
	ID                 string `json:"id"`
	PreviewID          string `json:"previewId"`
	Status             string `json:"status"`
	ConfirmationNumber string `json:"confirmationNumber"`
	ExecutedAt         string `json:"executedAt"`
	Message            string `json:"message,omitempty"`
}

// kindRoutes maps each action kind to its preview/execute endpoints and the
// execute request's preview ID field name.
var kindRoutes = map[action.Kind]struct {
	previewPath    string
	executePath    string
	previewIDField string
}{
	action.KindTransfer:    {"/api/transfers/preview", "/api/transfers/execute", "transferPreviewId"},
	action.KindBillPayment: {"/api/bills/preview", "/api/bills/execute", "billPaymentPreviewId"},
	action.KindInvestment:  {"/api/investments/preview", "/api/investments/execute", "investmentPreviewId"},
}

// Client calls the finance API over HTTP on behalf of the agent's tools and
// the confirmation session.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an API client with the given base URL and per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CallReadTool dispatches a read-only tool call to the matching data endpoint
// and returns the raw JSON response.
func (c *Client) CallReadTool(ctx context.Context, tool string, input json.RawMessage) (json.RawMessage, error) {
	switch tool {
	case "check_balance":
		return c.get(ctx, "/api/accounts", nil)

	case "view_transaction_history":
		var args struct {
			AccountID string `json:"accountId"`
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
			Limit     int    `json:"limit"`
		}
		if err := json.Unmarshal(input, &args); err != nil {
			return nil, fmt.Errorf("invalid tool input: %w", err)
		}
		query := url.Values{}
		if args.AccountID != "" {
			query.Set("accountId", args.AccountID)
		}
		if args.StartDate != "" {
			query.Set("startDate", args.StartDate)
		}
		if args.EndDate != "" {
			query.Set("endDate", args.EndDate)
		}
		if args.Limit > 0 {
			query.Set("limit", strconv.Itoa(args.Limit))
		}
		return c.get(ctx, "/api/transactions", query)

	case "calculate_budget":
		var args struct {
			Month int `json:"month"`
			Year  int `json:"year"`
		}
		if err := json.Unmarshal(input, &args); err != nil {
			return nil, fmt.Errorf("invalid tool input: %w", err)
		}
		query := url.Values{}
		query.Set("month", strconv.Itoa(args.Month))
		query.Set("year", strconv.Itoa(args.Year))
		return c.get(ctx, "/api/budget/calculate", query)

	default:
		return nil, fmt.Errorf("unknown read tool: %s", tool)
	}
}

// RecordApproval posts a decision to the approval gate.
func (c *Client) RecordApproval(ctx context.Context, actionID string, approved bool, notes string) (*ApprovalDecision, error) {
	body, err := c.post(ctx, "/api/approvals", map[string]interface{}{
		"actionId": actionID,
		"approved": approved,
		"notes":    notes,
	})
	if err != nil {
		return nil, err
	}

	var decision ApprovalDecision
	if err := json.Unmarshal(body, &decision); err != nil {
		return nil, fmt.Errorf("failed to decode approval response: %w", err)
	}
	return &decision, nil
}

// CreatePreview posts the tool input to the preview endpoint for the kind.
func (c *Client) CreatePreview(ctx context.Context, kind action.Kind, input json.RawMessage) (*PreviewRef, error) {
	routes, ok := kindRoutes[kind]
	if !ok {
		return nil, fmt.Errorf("unknown action kind: %s", kind)
	}

	body, err := c.post(ctx, routes.previewPath, input)
	if err != nil {
		return nil, err
	}

	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &ref); err != nil {
		return nil, fmt.Errorf("failed to decode preview response: %w", err)
	}
	return &PreviewRef{ID: ref.ID, Body: body}, nil
}

// ExecuteAction commits a previously previewed action.
func (c *Client) ExecuteAction(ctx context.Context, kind action.Kind, previewID, approvalToken string) (*ExecutionResult, error) {
	routes, ok := kindRoutes[kind]
	if !ok {
		return nil, fmt.Errorf("unknown action kind: %s", kind)
	}

	body, err := c.post(ctx, routes.executePath, map[string]string{
		routes.previewIDField: previewID,
		"approvalToken":       approvalToken,
	})
	if err != nil {
		return nil, err
	}

	var result ExecutionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode execute response: %w", err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body, resp.StatusCode),
		}
	}
	return body, nil
}

func extractErrorMessage(body []byte, statusCode int) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(statusCode)
}

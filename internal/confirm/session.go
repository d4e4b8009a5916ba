// Package confirm implements the per-action confirmation session: a small
// state machine that holds a money-moving action while the user decides,
// then drives the approval, preview, and execute calls in order on confirm,
// or synthesizes a local rejected result on reject.
package confirm

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/finance-assistant/internal/agent"
	"github.com/finance-assistant/internal/domain/action"
	"github.com/google/uuid"
)

// State is the session's lifecycle position.
type State string

const (
	StatePending   State = "pending"
	StateLoading   State = "loading"
	StateCompleted State = "completed"
	StateRejected  State = "rejected"
	StateError     State = "error"
)

// ActionClient is the slice of the API client the session needs.
// *agent.Client satisfies it.
type ActionClient interface {
	RecordApproval(ctx context.Context, actionID string, approved bool, notes string) (*agent.ApprovalDecision, error)
	CreatePreview(ctx context.Context, kind action.Kind, input json.RawMessage) (*agent.PreviewRef, error)
	ExecuteAction(ctx context.Context, kind action.Kind, previewID, approvalToken string) (*agent.ExecutionResult, error)
}

// Result is the terminal record of a confirmation session.
type Result struct {
	ID                 string `json:"id"`
	PreviewID          string `json:"previewId"`
	Status             string `json:"status"`
	ConfirmationNumber string `json:"confirmationNumber,omitempty"`
	ExecutedAt         string `json:"executedAt"`
	Message            string `json:"message"`
}

// actionArgs are the input fields the session reads back for its messages.
type actionArgs struct {
	Amount        float64 `json:"amount"`
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	BillID        string  `json:"billId"`
	AccountID     string  `json:"accountId"`
	InstrumentID  string  `json:"instrumentId"`
}

// Session holds one pending money-moving action. Confirm runs the approval
// gate, preview, and execute calls strictly in sequence; the next call never
// starts before the previous one succeeds, and there is no retry or abort
// path. Reject makes no network calls. Once a terminal result exists it is
// returned unchanged from either entry point.
type Session struct {
	mu sync.Mutex

	actionID string
	kind     action.Kind
	input    json.RawMessage
	summary  string
	client   ActionClient

	state   State
	lastErr string
	result  *Result
}

// NewSession creates a pending session for the given action.
func NewSession(client ActionClient, kind action.Kind, input json.RawMessage, summary string) *Session {
	return &Session{
		actionID: uuid.New().String(),
		kind:     kind,
		input:    input,
		summary:  summary,
		client:   client,
		state:    StatePending,
	}
}

// ActionID returns the session's action identifier.
func (s *Session) ActionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actionID
}

// Summary returns the human-readable description of the pending action.
func (s *Session) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the last failure message, empty outside the error state.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Result returns the terminal result, nil until one exists.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Confirm drives the approval gate, preview, and execute calls in order.
// On any failure the session enters the error state and stays re-confirmable.
// If a terminal result already exists it is returned unchanged.
func (s *Session) Confirm(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return s.result, nil
	}

	s.state = StateLoading
	s.lastErr = ""

	decision, err := s.client.RecordApproval(ctx, s.actionID, true, "")
	if err != nil {
		return nil, s.fail("Approval failed: %v", err)
	}

	preview, err := s.client.CreatePreview(ctx, s.kind, s.input)
	if err != nil {
		return nil, s.fail("Preview failed: %v", err)
	}

	executed, err := s.client.ExecuteAction(ctx, s.kind, preview.ID, decision.ApprovalToken)
	if err != nil {
		return nil, s.fail("Execution failed: %v", err)
	}

	message := executed.Message
	if message == "" {
		message = successMessage(s.kind, s.input, executed.ConfirmationNumber)
	}

	s.state = StateCompleted
	s.result = &Result{
		ID:                 executed.ID,
		PreviewID:          executed.PreviewID,
		Status:             executed.Status,
		ConfirmationNumber: executed.ConfirmationNumber,
		ExecutedAt:         executed.ExecutedAt,
		Message:            message,
	}
	return s.result, nil
}

// Reject terminates the session locally with a rejected result. No network
// calls are made. If a terminal result already exists it is returned unchanged.
func (s *Session) Reject() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return s.result
	}

	s.state = StateRejected
	s.result = &Result{
		ID:         "rejected-" + uuid.New().String(),
		Status:     string(action.StatusRejected),
		ExecutedAt: time.Now().Format(time.RFC3339),
		Message:    cancellationMessage(s.kind, s.input),
	}
	return s.result
}

// fail records the failure and leaves the session re-confirmable.
func (s *Session) fail(format string, err error) error {
	wrapped := fmt.Errorf(format, err)
	s.state = StateError
	s.lastErr = wrapped.Error()
	return wrapped
}

func successMessage(kind action.Kind, input json.RawMessage, confirmationNumber string) string {
	var args actionArgs
	_ = json.Unmarshal(input, &args)
	amount := formatAmount(args.Amount)

	switch kind {
	case action.KindTransfer:
		return fmt.Sprintf("Transfer of $%s completed successfully. Confirmation: %s", amount, confirmationNumber)
	case action.KindBillPayment:
		return fmt.Sprintf("Payment of $%s for bill %s completed successfully. Confirmation: %s", amount, args.BillID, confirmationNumber)
	case action.KindInvestment:
		return fmt.Sprintf("Investment of $%s in %s completed successfully. Confirmation: %s", amount, args.InstrumentID, confirmationNumber)
	default:
		return fmt.Sprintf("Action completed successfully. Confirmation: %s", confirmationNumber)
	}
}

func cancellationMessage(kind action.Kind, input json.RawMessage) string {
	var args actionArgs
	_ = json.Unmarshal(input, &args)
	amount := formatAmount(args.Amount)

	switch kind {
	case action.KindTransfer:
		return fmt.Sprintf("Transfer of $%s from account %s to %s was cancelled.", amount, args.FromAccountID, args.ToAccountID)
	case action.KindBillPayment:
		return fmt.Sprintf("Payment of $%s for bill %s was cancelled.", amount, args.BillID)
	case action.KindInvestment:
		return fmt.Sprintf("Investment of $%s in %s was cancelled.", amount, args.InstrumentID)
	default:
		return "Action was cancelled."
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// Package action defines the preview/approval/execute protocol types shared
// by the three money-moving actions: transfers, bill payments, and
// investments. A Preview is a provisional, not-yet-committed description of
// an action; a Result is the terminal record produced when the action is
// executed or rejected.
package action

import "time"

// Kind identifies the action type a preview or result belongs to.
type Kind string

const (
	KindTransfer    Kind = "transfer"
	KindBillPayment Kind = "bill_payment"
	KindInvestment  Kind = "investment"
)

// Status defines the terminal states of an action.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Preview is a provisional description of a money-moving action. It is
// immutable once created and only valid within the store's TTL window.
type Preview struct {
	ID        string
	Kind      Kind
	CreatedAt time.Time

	// Details holds the kind-specific payload: *TransferDetails,
	// *BillPaymentDetails, or *InvestmentDetails.
	Details any
}

// TransferDetails is the payload of a transfer preview.
type TransferDetails struct {
	FromAccountID string
	ToAccountID   string
	Amount        float64
	Description   string
	Fees          float64
}

// BillPaymentDetails is the payload of a bill payment preview.
type BillPaymentDetails struct {
	BillID    string
	AccountID string
	Amount    float64
	Payee     string
	DueDate   time.Time
}

// InvestmentDetails is the payload of an investment preview.
type InvestmentDetails struct {
	AccountID    string
	InstrumentID string
	Amount       float64
	Projected    ProjectedReturns
}

// ProjectedReturns holds compound-growth projections for an investment.
type ProjectedReturns struct {
	OneYear  float64 `json:"oneYear"`
	FiveYear float64 `json:"fiveYear"`
	TenYear  float64 `json:"tenYear"`
}

// Result is the terminal record of a confirmed or rejected action.
// It is created exactly once per action and never mutated.
type Result struct {
	ID                 string
	PreviewID          string
	Kind               Kind
	Status             Status
	ConfirmationNumber string // present iff Status is StatusCompleted
	ExecutedAt         time.Time
	Message            string
}

// Approval records a human-in-the-loop decision for a pending action.
// Token is only set when the decision was affirmative.
type Approval struct {
	ActionID  string
	Approved  bool
	Notes     string
	Token     string
	Timestamp time.Time
}

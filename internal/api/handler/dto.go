package handler

// Request and response DTOs. Field names are part of the wire contract and
// must not change.

// TransactionListParams represents query filters for the transaction list
type TransactionListParams struct {
	AccountID string `form:"accountId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
}

// TransferPreviewRequest represents a request to preview a transfer
type TransferPreviewRequest struct {
	FromAccountID string  `json:"fromAccountId" binding:"required"`
	ToAccountID   string  `json:"toAccountId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Description   string  `json:"description"`
}

// TransferPreviewResponse represents a transfer preview in API responses
type TransferPreviewResponse struct {
	ID            string  `json:"id"`
	FromAccountID string  `json:"fromAccountId"`
	ToAccountID   string  `json:"toAccountId"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Fees          float64 `json:"fees"`
	Timestamp     string  `json:"timestamp"`
}

// ExecuteTransferRequest represents a request to execute a previewed transfer
type ExecuteTransferRequest struct {
	TransferPreviewID string `json:"transferPreviewId" binding:"required"`
	ApprovalToken     string `json:"approvalToken" binding:"required"`
}

// BillPaymentPreviewRequest represents a request to preview a bill payment
type BillPaymentPreviewRequest struct {
	BillID    string  `json:"billId" binding:"required"`
	AccountID string  `json:"accountId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// BillPaymentPreviewResponse represents a bill payment preview in API responses
type BillPaymentPreviewResponse struct {
	ID        string  `json:"id"`
	BillID    string  `json:"billId"`
	AccountID string  `json:"accountId"`
	Amount    float64 `json:"amount"`
	Payee     string  `json:"payee"`
	DueDate   string  `json:"dueDate"`
	Timestamp string  `json:"timestamp"`
}

// ExecuteBillPaymentRequest represents a request to execute a previewed bill payment
type ExecuteBillPaymentRequest struct {
	BillPaymentPreviewID string `json:"billPaymentPreviewId" binding:"required"`
	ApprovalToken        string `json:"approvalToken" binding:"required"`
}

// InvestmentPreviewRequest represents a request to preview an investment
type InvestmentPreviewRequest struct {
	AccountID    string  `json:"accountId" binding:"required"`
	InstrumentID string  `json:"instrumentId" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

// ProjectedReturnsResponse represents investment growth projections
type ProjectedReturnsResponse struct {
	OneYear  float64 `json:"oneYear"`
	FiveYear float64 `json:"fiveYear"`
	TenYear  float64 `json:"tenYear"`
}

// InvestmentPreviewResponse represents an investment preview in API responses
type InvestmentPreviewResponse struct {
	ID               string                   `json:"id"`
	AccountID        string                   `json:"accountId"`
	InstrumentID     string                   `json:"instrumentId"`
	Amount           float64                  `json:"amount"`
	ProjectedReturns ProjectedReturnsResponse `json:"projectedReturns"`
	Timestamp        string                   `json:"timestamp"`
}

// ExecuteInvestmentRequest represents a request to execute a previewed investment
type ExecuteInvestmentRequest struct {
	InvestmentPreviewID string `json:"investmentPreviewId" binding:"required"`
	ApprovalToken       string `json:"approvalToken" binding:"required"`
}

// ExecuteResponse represents the terminal record of an executed action
type ExecuteResponse struct {
	ID                 string `json:"id"`
	PreviewID          string `json:"previewId"`
	Status             string `json:"status"`
	ConfirmationNumber string `json:"confirmationNumber"`
	ExecutedAt         string `json:"executedAt"`
}

// ApprovalRequest represents an approval decision for a pending action.
// Approved is a pointer so that an explicit false is distinguishable from
// an absent field.
type ApprovalRequest struct {
	ActionID string `json:"actionId" binding:"required"`
	Approved *bool  `json:"approved" binding:"required"`
	Notes    string `json:"notes"`
}

// ApprovalResponse represents a recorded approval decision
type ApprovalResponse struct {
	ActionID      string `json:"actionId"`
	Approved      bool   `json:"approved"`
	Timestamp     string `json:"timestamp"`
	ApprovalToken string `json:"approvalToken,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

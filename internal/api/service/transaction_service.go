package service

import (
	"context"

	"github.com/finance-assistant/internal/domain/finance"
)

// TransactionServiceImpl implements the TransactionService interface
type TransactionServiceImpl struct {
	data finance.DataSource
}

// NewTransactionService creates a new transaction service
func NewTransactionService(data finance.DataSource) TransactionService {
	return &TransactionServiceImpl{
		data: data,
	}
}

// ListTransactions returns transactions matching the filter, most recent first
func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, filter finance.TransactionFilter) ([]finance.Transaction, error) {
	return s.data.ListTransactions(ctx, filter)
}

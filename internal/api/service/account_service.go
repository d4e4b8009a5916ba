package service

import (
	"context"

	"github.com/finance-assistant/internal/domain/finance"
)

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	data finance.DataSource
}

// NewAccountService creates a new account service
func NewAccountService(data finance.DataSource) AccountService {
	return &AccountServiceImpl{
		data: data,
	}
}

// ListAccounts returns all accounts
func (s *AccountServiceImpl) ListAccounts(ctx context.Context) ([]finance.Account, error) {
	return s.data.ListAccounts(ctx)
}

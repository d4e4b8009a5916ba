package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/finance-assistant/internal/domain/finance"
)

// BudgetServiceImpl implements the BudgetService interface
type BudgetServiceImpl struct {
	data finance.DataSource
}

// NewBudgetService creates a new budget service
func NewBudgetService(data finance.DataSource) BudgetService {
	return &BudgetServiceImpl{
		data: data,
	}
}

// Calculate summarizes debit spending by category for the given month and
// derives recommendations from the largest categories.
func (s *BudgetServiceImpl) Calculate(ctx context.Context, month, year int) (*finance.BudgetAnalysis, error) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := fmt.Sprintf("%04d-%02d-31", year, month)

	transactions, err := s.data.ListTransactions(ctx, finance.TransactionFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	spending := make(map[string]float64)
	for _, t := range transactions {
		if t.Amount >= 0 {
			continue // only debits count as spending
		}
		spending[t.Category] += math.Abs(t.Amount)
	}

	return &finance.BudgetAnalysis{
		Month:              month,
		Year:               year,
		SpendingByCategory: spending,
		Recommendations:    recommendations(spending),
	}, nil
}

// recommendations produces canned advice keyed off the spending profile.
func recommendations(spending map[string]float64) []string {
	if len(spending) == 0 {
		return []string{"No spending recorded for this period"}
	}

	categories := make([]string, 0, len(spending))
	for category := range spending {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if spending[categories[i]] != spending[categories[j]] {
			return spending[categories[i]] > spending[categories[j]]
		}
		return categories[i] < categories[j]
	})

	recs := []string{
		fmt.Sprintf("Consider reducing %s spending", categories[0]),
	}
	if len(categories) > 1 {
		recs = append(recs, fmt.Sprintf("%s expenses are within budget", categories[len(categories)-1]))
	}
	recs = append(recs, "Review recurring charges for savings opportunities")
	return recs
}

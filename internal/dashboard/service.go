// Package dashboard assembles per-expense overview rows: the expense, its
// categories, and the aggregated total cost and date range of its items.
package dashboard

import (
	"log/slog"

	"github.com/chasselife/xpnse/internal"
	"github.com/chasselife/xpnse/internal/category"
	"github.com/chasselife/xpnse/internal/expense"
	"github.com/chasselife/xpnse/internal/item"
)

type ExpenseLister interface {
	GetAll() ([]*expense.Expense, error)
}

type CategoryDirectory interface {
	GetByExpenseID(expenseID string) ([]*category.Category, error)
}

type Aggregator interface {
	TotalCostByExpenseID(expenseID string) (float64, error)
	DateRangeByExpenseID(expenseID string) (*item.DateRange, error)
}

// Summary is one dashboard row.
type Summary struct {
	Expense    *expense.Expense     `json:"expense"`
	Categories []*category.Category `json:"categories"`
	TotalCost  float64              `json:"totalCost"`
	DateRange  *item.DateRange      `json:"dateRange"`
}

type Service struct {
	expenses   ExpenseLister
	categories CategoryDirectory
	aggregator Aggregator
	logger     *slog.Logger
}

func NewService(expenses ExpenseLister, categories CategoryDirectory, aggregator Aggregator, logger *slog.Logger) *Service {
	return &Service{
		expenses:   expenses,
		categories: categories,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Summaries resolves every expense's categories, total and date range. The
// per-expense loads run in parallel; results keep the expense order.
func (s *Service) Summaries() ([]Summary, error) {
	expenses, err := s.expenses.GetAll()
	if err != nil {
		s.logger.Error("failed to list expenses for dashboard", "error", err)
		return nil, err
	}

	summaries, err := internal.Gather(expenses, func(exp *expense.Expense) (Summary, error) {
		categories, err := s.categories.GetByExpenseID(exp.ID)
		if err != nil {
			return Summary{}, err
		}
		total, err := s.aggregator.TotalCostByExpenseID(exp.ID)
		if err != nil {
			return Summary{}, err
		}
		dateRange, err := s.aggregator.DateRangeByExpenseID(exp.ID)
		if err != nil {
			return Summary{}, err
		}
		return Summary{
			Expense:    exp,
			Categories: categories,
			TotalCost:  total,
			DateRange:  dateRange,
		}, nil
	})
	if err != nil {
		s.logger.Error("failed to build dashboard summaries", "error", err)
		return nil, err
	}

	return summaries, nil
}

package dashboard_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/chasselife/xpnse/internal/category"
	"github.com/chasselife/xpnse/internal/dashboard"
	"github.com/chasselife/xpnse/internal/expense"
	"github.com/chasselife/xpnse/internal/item"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDashboardService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dashboard Service Suite")
}

// MockExpenseLister implements dashboard.ExpenseLister for testing
type MockExpenseLister struct {
	expenses []*expense.Expense
	err      error
}

func (m *MockExpenseLister) GetAll() ([]*expense.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.expenses, nil
}

// MockCategoryDirectory implements dashboard.CategoryDirectory for testing
type MockCategoryDirectory struct {
	byExpense map[string][]*category.Category
	err       error
}

func (m *MockCategoryDirectory) GetByExpenseID(expenseID string) ([]*category.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byExpense[expenseID], nil
}

// MockAggregator implements dashboard.Aggregator for testing
type MockAggregator struct {
	totals map[string]float64
	ranges map[string]*item.DateRange
	err    error
}

func (m *MockAggregator) TotalCostByExpenseID(expenseID string) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.totals[expenseID], nil
}

func (m *MockAggregator) DateRangeByExpenseID(expenseID string) (*item.DateRange, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ranges[expenseID], nil
}

var _ = Describe("Dashboard Service", func() {
	var (
		lister     *MockExpenseLister
		categories *MockCategoryDirectory
		aggregator *MockAggregator
		service    *dashboard.Service
		logger     *slog.Logger
	)

	BeforeEach(func() {
		lister = &MockExpenseLister{
			expenses: []*expense.Expense{
				{ID: "e1", Title: "Weekend Trip", CreatedAt: "2024-01-01T08:00:00.000Z"},
				{ID: "e2", Title: "Groceries", CreatedAt: "2024-01-02T08:00:00.000Z"},
			},
		}
		categories = &MockCategoryDirectory{
			byExpense: map[string][]*category.Category{
				"e1": {
					{ID: "c1", ExpenseID: "e1", Title: "Food"},
					{ID: "c2", ExpenseID: "e1", Title: "Lodging"},
				},
			},
		}
		aggregator = &MockAggregator{
			totals: map[string]float64{"e1": 142.50},
			ranges: map[string]*item.DateRange{
				"e1": {Min: "2024-01-15", Max: "2024-03-01"},
			},
		}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = dashboard.NewService(lister, categories, aggregator, logger)
	})

	Describe("Summaries", func() {
		It("should build one row per expense in expense order", func() {
			summaries, err := service.Summaries()
			Expect(err).NotTo(HaveOccurred())
			Expect(summaries).To(HaveLen(2))
			Expect(summaries[0].Expense.ID).To(Equal("e1"))
			Expect(summaries[1].Expense.ID).To(Equal("e2"))
		})

		It("should attach categories, total and date range", func() {
			summaries, err := service.Summaries()
			Expect(err).NotTo(HaveOccurred())

			first := summaries[0]
			Expect(first.Categories).To(HaveLen(2))
			Expect(first.TotalCost).To(BeNumerically("~", 142.50, 1e-9))
			Expect(first.DateRange.Min).To(Equal("2024-01-15"))
			Expect(first.DateRange.Max).To(Equal("2024-03-01"))
		})

		It("should report zero totals and a nil range for an empty expense", func() {
			summaries, err := service.Summaries()
			Expect(err).NotTo(HaveOccurred())

			second := summaries[1]
			Expect(second.Categories).To(BeEmpty())
			Expect(second.TotalCost).To(Equal(0.0))
			Expect(second.DateRange).To(BeNil())
		})

		Context("when listing expenses fails", func() {
			BeforeEach(func() {
				lister.err = errors.New("database error")
			})

			It("should return the error", func() {
				summaries, err := service.Summaries()
				Expect(err).To(HaveOccurred())
				Expect(summaries).To(BeNil())
			})
		})

		Context("when an aggregation fails", func() {
			BeforeEach(func() {
				aggregator.err = errors.New("aggregation failed")
			})

			It("should fail the whole dashboard", func() {
				summaries, err := service.Summaries()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("aggregation failed"))
				Expect(summaries).To(BeNil())
			})
		})

		Context("when there are no expenses", func() {
			BeforeEach(func() {
				lister.expenses = nil
			})

			It("should return an empty result", func() {
				summaries, err := service.Summaries()
				Expect(err).NotTo(HaveOccurred())
				Expect(summaries).To(BeEmpty())
			})
		})
	})
})

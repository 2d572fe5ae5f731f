package state_test

import (
	"errors"

	"github.com/chasselife/xpnse/internal/category"
	"github.com/chasselife/xpnse/internal/state"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockCategoryService implements state.CategoryService for testing
type MockCategoryService struct {
	byExpense   map[string][]*category.Category
	loadErr     error
	createErr   error
	updateErr   error
	deleteErr   error
	nextCreated *category.Category
	nextUpdated *category.Category
}

func (m *MockCategoryService) GetByExpenseID(expenseID string) ([]*category.Category, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.byExpense[expenseID], nil
}

func (m *MockCategoryService) Create(dto category.CreateCategoryDTO) (*category.Category, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.nextCreated, nil
}

func (m *MockCategoryService) Update(id string, dto category.UpdateCategoryDTO) (*category.Category, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.nextUpdated, nil
}

func (m *MockCategoryService) Delete(id string) error {
	return m.deleteErr
}

var _ = Describe("Category Store", func() {
	var (
		mockSvc *MockCategoryService
		store   *state.CategoryStore
	)

	BeforeEach(func() {
		mockSvc = &MockCategoryService{
			byExpense: map[string][]*category.Category{
				"expense-1": {
					{ID: "c1", ExpenseID: "expense-1", Title: "Food"},
					{ID: "c2", ExpenseID: "expense-1", Title: "Lodging"},
				},
			},
		}
		store = state.NewCategoryStore(mockSvc)
	})

	Describe("Load", func() {
		It("should cache the expense's categories and record the scope", func() {
			store.Load("expense-1")
			Expect(store.Categories()).To(HaveLen(2))
			Expect(store.ExpenseID()).To(Equal("expense-1"))
			Expect(store.Err()).To(BeEmpty())
		})

		It("should cache an empty collection for an unknown expense", func() {
			store.Load("expense-without-categories")
			Expect(store.Categories()).To(BeEmpty())
			Expect(store.Err()).To(BeEmpty())
		})

		Context("when the service fails", func() {
			It("should reset the collection to empty and record the error", func() {
				store.Load("expense-1")
				Expect(store.Categories()).To(HaveLen(2))

				mockSvc.loadErr = errors.New("database error")
				store.Load("expense-1")

				Expect(store.Categories()).To(BeEmpty())
				Expect(store.Err()).To(ContainSubstring("database error"))
			})
		})
	})

	Describe("Add", func() {
		It("should append the created record", func() {
			store.Load("expense-1")
			mockSvc.nextCreated = &category.Category{ID: "c3", ExpenseID: "expense-1", Title: "Transport"}
			store.Add(category.CreateCategoryDTO{ExpenseID: "expense-1", Title: "Transport"})

			Expect(store.Categories()).To(HaveLen(3))
		})

		Context("when the service fails", func() {
			It("should keep the cache and record the error", func() {
				store.Load("expense-1")
				mockSvc.createErr = errors.New("expense with id expense-1 not found")
				store.Add(category.CreateCategoryDTO{ExpenseID: "expense-1", Title: "Transport"})

				Expect(store.Categories()).To(HaveLen(2))
				Expect(store.Err()).To(ContainSubstring("not found"))
			})
		})
	})

	Describe("Update", func() {
		It("should replace the matching record in place", func() {
			store.Load("expense-1")
			mockSvc.nextUpdated = &category.Category{ID: "c1", ExpenseID: "expense-1", Title: "Food & Drink"}
			title := "Food & Drink"
			store.Update("c1", category.UpdateCategoryDTO{Title: &title})

			categories := store.Categories()
			Expect(categories).To(HaveLen(2))
			Expect(categories[0].Title).To(Equal("Food & Drink"))
		})
	})

	Describe("Delete", func() {
		It("should remove the record from the cache", func() {
			store.Load("expense-1")
			store.Delete("c1")

			categories := store.Categories()
			Expect(categories).To(HaveLen(1))
			Expect(categories[0].ID).To(Equal("c2"))
		})

		Context("when the service fails", func() {
			It("should still remove the record and record the error", func() {
				store.Load("expense-1")
				mockSvc.deleteErr = errors.New("delete failed")
				store.Delete("c1")

				Expect(store.Categories()).To(HaveLen(1))
				Expect(store.Err()).To(ContainSubstring("delete failed"))
			})
		})
	})
})

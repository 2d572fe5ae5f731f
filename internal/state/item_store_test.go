package state_test

import (
	"errors"

	"github.com/chasselife/xpnse/internal/item"
	"github.com/chasselife/xpnse/internal/state"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockItemService implements state.ItemService for testing
type MockItemService struct {
	byCategory  map[string][]*item.Item
	loadErr     error
	createErr   error
	updateErr   error
	deleteErr   error
	nextCreated *item.Item
	nextUpdated *item.Item
}

func (m *MockItemService) GetByCategoryID(categoryID string) ([]*item.Item, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.byCategory[categoryID], nil
}

func (m *MockItemService) Create(dto item.CreateItemDTO) (*item.Item, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.nextCreated, nil
}

func (m *MockItemService) Update(id string, dto item.UpdateItemDTO) (*item.Item, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.nextUpdated, nil
}

func (m *MockItemService) Delete(id string) error {
	return m.deleteErr
}

func newItem(id, categoryID, date string, cost float64) *item.Item {
	return &item.Item{
		ID:                id,
		ExpenseCategoryID: categoryID,
		Date:              date,
		Title:             "Entry",
		Cost:              cost,
	}
}

var _ = Describe("Item Store", func() {
	var (
		mockSvc *MockItemService
		store   *state.ItemStore
	)

	BeforeEach(func() {
		mockSvc = &MockItemService{
			byCategory: map[string][]*item.Item{
				"category-1": {
					newItem("i1", "category-1", "2024-03-01", 12.50),
					newItem("i2", "category-1", "2024-01-15", 7.50),
				},
			},
		}
		store = state.NewItemStore(mockSvc)
	})

	Describe("Load", func() {
		It("should cache the category's items and record the scope", func() {
			store.Load("category-1")
			Expect(store.Items()).To(HaveLen(2))
			Expect(store.CategoryID()).To(Equal("category-1"))
			Expect(store.Loading()).To(BeFalse())
			Expect(store.Err()).To(BeEmpty())
		})

		Context("when the service fails", func() {
			It("should reset the collection to empty and record the error", func() {
				store.Load("category-1")
				Expect(store.Items()).To(HaveLen(2))

				mockSvc.loadErr = errors.New("database error")
				store.Load("category-1")

				Expect(store.Items()).To(BeEmpty())
				Expect(store.Err()).To(ContainSubstring("database error"))
			})
		})
	})

	Describe("TotalCost", func() {
		It("should sum over the cached items", func() {
			store.Load("category-1")
			Expect(store.TotalCost()).To(BeNumerically("~", 20.00, 1e-9))
		})

		It("should be zero for an empty cache", func() {
			Expect(store.TotalCost()).To(Equal(0.0))
		})

		It("should track mutations immediately", func() {
			store.Load("category-1")
			store.Delete("i1")
			Expect(store.TotalCost()).To(BeNumerically("~", 7.50, 1e-9))
		})
	})

	Describe("DateRange", func() {
		It("should span the cached item dates", func() {
			store.Load("category-1")
			dateRange := store.DateRange()
			Expect(dateRange).NotTo(BeNil())
			Expect(dateRange.Min).To(Equal("2024-01-15"))
			Expect(dateRange.Max).To(Equal("2024-03-01"))
		})

		It("should be nil for an empty cache", func() {
			Expect(store.DateRange()).To(BeNil())
		})
	})

	Describe("Add", func() {
		It("should append the created record", func() {
			store.Load("category-1")
			mockSvc.nextCreated = newItem("i3", "category-1", "2024-02-10", 5)
			store.Add(item.CreateItemDTO{ExpenseCategoryID: "category-1", Date: "2024-02-10", Title: "Entry", Cost: 5})

			Expect(store.Items()).To(HaveLen(3))
			Expect(store.TotalCost()).To(BeNumerically("~", 25.00, 1e-9))
		})

		Context("when the service fails", func() {
			It("should keep the cache and record the error", func() {
				store.Load("category-1")
				mockSvc.createErr = errors.New("create failed")
				store.Add(item.CreateItemDTO{ExpenseCategoryID: "category-1", Date: "2024-02-10", Title: "Entry"})

				Expect(store.Items()).To(HaveLen(2))
				Expect(store.Err()).To(ContainSubstring("create failed"))
			})
		})
	})

	Describe("Update", func() {
		It("should replace the matching record in place", func() {
			store.Load("category-1")
			mockSvc.nextUpdated = newItem("i1", "category-1", "2024-03-01", 99)
			cost := 99.0
			store.Update("i1", item.UpdateItemDTO{Cost: &cost})

			Expect(store.Items()).To(HaveLen(2))
			Expect(store.TotalCost()).To(BeNumerically("~", 106.50, 1e-9))
		})
	})

	Describe("Delete", func() {
		Context("when the service fails", func() {
			It("should still remove the record and record the error", func() {
				store.Load("category-1")
				mockSvc.deleteErr = errors.New("delete failed")
				store.Delete("i1")

				Expect(store.Items()).To(HaveLen(1))
				Expect(store.Err()).To(ContainSubstring("delete failed"))
			})
		})
	})
})

package item

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/chasselife/xpnse/internal"
	"github.com/chasselife/xpnse/internal/category"
	"github.com/google/uuid"
)

// Repository interface defines the data access methods for items
type Repository interface {
	Add(it *Item) (*Item, error)
	Get(id string) (*Item, bool, error)
	GetAll() ([]*Item, error)
	GetByIndex(index, value string) ([]*Item, error)
	Update(it *Item) (*Item, error)
	Delete(id string) error
}

// CategoryDirectory resolves the categories of an expense for the
// expense-scoped aggregations.
type CategoryDirectory interface {
	Exists(id string) (bool, error)
	GetByExpenseID(expenseID string) ([]*category.Category, error)
}

// Service handles item business logic and the derived aggregation queries.
type Service struct {
	repo       Repository
	categories CategoryDirectory
	logger     *slog.Logger
}

// NewService creates a new item service
func NewService(repo Repository, categories CategoryDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

func (s *Service) GetAll() ([]*Item, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get items", "error", err)
		return nil, err
	}
	return items, nil
}

// GetByID retrieves an item by id; nil when absent.
func (s *Service) GetByID(id string) (*Item, error) {
	it, found, err := s.repo.Get(id)
	if err != nil {
		s.logger.Error("failed to get item", "error", err, "item_id", id)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return it, nil
}

// GetByCategoryID returns all items of a category via the by-categoryId index.
func (s *Service) GetByCategoryID(categoryID string) ([]*Item, error) {
	items, err := s.repo.GetByIndex(IndexByCategoryID, categoryID)
	if err != nil {
		s.logger.Error("failed to get items by category", "error", err, "category_id", categoryID)
		return nil, err
	}
	return items, nil
}

// Create stamps id and timestamps and persists the item. The referenced
// category must exist at creation time.
func (s *Service) Create(dto CreateItemDTO) (*Item, error) {
	exists, err := s.categories.Exists(dto.ExpenseCategoryID)
	if err != nil {
		s.logger.Error("failed to check parent category", "error", err, "category_id", dto.ExpenseCategoryID)
		return nil, err
	}
	if !exists {
		return nil, internal.NewNotFoundError(
			fmt.Sprintf("category with id %s not found", dto.ExpenseCategoryID), internal.ErrCodeCategoryNotFound)
	}

	now := internal.NowTimestamp()
	subItems := dto.SubItems
	if subItems == nil {
		subItems = []string{}
	}
	it := &Item{
		ID:                uuid.NewString(),
		CreatedAt:         now,
		UpdatedAt:         now,
		Date:              dto.Date,
		Time:              dto.Time,
		ExpenseCategoryID: dto.ExpenseCategoryID,
		Title:             dto.Title,
		SubItems:          subItems,
		Notes:             dto.Notes,
		Cost:              dto.Cost,
	}

	created, err := s.repo.Add(it)
	if err != nil {
		s.logger.Error("failed to create item", "error", err, "category_id", dto.ExpenseCategoryID)
		return nil, err
	}

	s.logger.Info("item created", "item_id", created.ID, "category_id", created.ExpenseCategoryID, "cost", created.Cost)
	return created, nil
}

// Update shallow-merges supplied fields, re-stamps updatedAt and persists.
// Fails with a not-found error when the id is absent.
func (s *Service) Update(id string, dto UpdateItemDTO) (*Item, error) {
	existing, found, err := s.repo.Get(id)
	if err != nil {
		s.logger.Error("failed to load item for update", "error", err, "item_id", id)
		return nil, err
	}
	if !found {
		return nil, internal.NewNotFoundError(
			fmt.Sprintf("item with id %s not found", id), internal.ErrCodeItemNotFound)
	}

	if dto.Date != nil {
		existing.Date = *dto.Date
	}
	if dto.Time != nil {
		existing.Time = *dto.Time
	}
	if dto.Title != nil {
		existing.Title = *dto.Title
	}
	if dto.SubItems != nil {
		existing.SubItems = *dto.SubItems
	}
	if dto.Notes != nil {
		existing.Notes = *dto.Notes
	}
	if dto.Cost != nil {
		existing.Cost = *dto.Cost
	}
	existing.UpdatedAt = internal.NowTimestamp()

	updated, err := s.repo.Update(existing)
	if err != nil {
		s.logger.Error("failed to update item", "error", err, "item_id", id)
		return nil, err
	}

	s.logger.Info("item updated", "item_id", id)
	return updated, nil
}

// Delete removes an item by id, silently for absent ids.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete item", "error", err, "item_id", id)
		return err
	}

	s.logger.Info("item deleted", "item_id", id)
	return nil
}

// TotalCostByCategoryID sums cost over the category's items; 0 for none.
func (s *Service) TotalCostByCategoryID(categoryID string) (float64, error) {
	items, err := s.GetByCategoryID(categoryID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, it := range items {
		total += it.Cost
	}
	return total, nil
}

// DateRangeByCategoryID returns the lexicographic min/max over the
// category's item dates, or nil when the category has no items.
func (s *Service) DateRangeByCategoryID(categoryID string) (*DateRange, error) {
	items, err := s.GetByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(items))
	for _, it := range items {
		dates = append(dates, it.Date)
	}
	return dateRange(dates), nil
}

// TotalCostByExpenseID resolves the expense's categories, then sums each
// category's items. The per-category reads fan out in parallel.
func (s *Service) TotalCostByExpenseID(expenseID string) (float64, error) {
	categories, err := s.categories.GetByExpenseID(expenseID)
	if err != nil {
		return 0, err
	}

	totals, err := internal.Gather(categories, func(c *category.Category) (float64, error) {
		return s.TotalCostByCategoryID(c.ID)
	})
	if err != nil {
		return 0, err
	}

	var total float64
	for _, t := range totals {
		total += t
	}
	return total, nil
}

// DateRangeByExpenseID collects all item dates across the expense's
// categories and takes the lexicographic min/max; nil when no items exist
// anywhere under the expense.
func (s *Service) DateRangeByExpenseID(expenseID string) (*DateRange, error) {
	categories, err := s.categories.GetByExpenseID(expenseID)
	if err != nil {
		return nil, err
	}

	perCategory, err := internal.Gather(categories, func(c *category.Category) ([]string, error) {
		items, err := s.GetByCategoryID(c.ID)
		if err != nil {
			return nil, err
		}
		dates := make([]string, 0, len(items))
		for _, it := range items {
			dates = append(dates, it.Date)
		}
		return dates, nil
	})
	if err != nil {
		return nil, err
	}

	var allDates []string
	for _, dates := range perCategory {
		allDates = append(allDates, dates...)
	}
	return dateRange(allDates), nil
}

func dateRange(dates []string) *DateRange {
	if len(dates) == 0 {
		return nil
	}
	sort.Strings(dates)
	return &DateRange{Min: dates[0], Max: dates[len(dates)-1]}
}

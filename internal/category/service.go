package category

import (
	"fmt"
	"log/slog"

	"github.com/chasselife/xpnse/internal"
	"github.com/google/uuid"
)

// Repository interface defines the data access methods for categories
type Repository interface {
	Add(cat *Category) (*Category, error)
	Get(id string) (*Category, bool, error)
	GetAll() ([]*Category, error)
	GetByIndex(index, value string) ([]*Category, error)
	Update(cat *Category) (*Category, error)
	Delete(id string) error
}

// ExpenseChecker reports whether the referenced parent expense exists.
type ExpenseChecker interface {
	Exists(id string) (bool, error)
}

// Service handles category business logic
type Service struct {
	repo     Repository
	expenses ExpenseChecker
	logger   *slog.Logger
}

// NewService creates a new category service
func NewService(repo Repository, expenses ExpenseChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		expenses: expenses,
		logger:   logger,
	}
}

func (s *Service) GetAll() ([]*Category, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// GetByID retrieves a category by id; nil when absent.
func (s *Service) GetByID(id string) (*Category, error) {
	cat, found, err := s.repo.Get(id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return cat, nil
}

// Exists reports whether a category with the id is stored.
func (s *Service) Exists(id string) (bool, error) {
	_, found, err := s.repo.Get(id)
	if err != nil {
		return false, err
	}
	return found, nil
}

// GetByExpenseID returns all categories belonging to the expense via the
// by-expenseId index.
func (s *Service) GetByExpenseID(expenseID string) ([]*Category, error) {
	categories, err := s.repo.GetByIndex(IndexByExpenseID, expenseID)
	if err != nil {
		s.logger.Error("failed to get categories by expense", "error", err, "expense_id", expenseID)
		return nil, err
	}
	return categories, nil
}

// Create stamps id and timestamps and persists the category. The referenced
// expense must exist at creation time; storage itself never enforces the
// foreign key.
func (s *Service) Create(dto CreateCategoryDTO) (*Category, error) {
	exists, err := s.expenses.Exists(dto.ExpenseID)
	if err != nil {
		s.logger.Error("failed to check parent expense", "error", err, "expense_id", dto.ExpenseID)
		return nil, err
	}
	if !exists {
		return nil, internal.NewNotFoundError(
			fmt.Sprintf("expense with id %s not found", dto.ExpenseID), internal.ErrCodeExpenseNotFound)
	}

	now := internal.NowTimestamp()
	cat := &Category{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpenseID:   dto.ExpenseID,
		Title:       dto.Title,
		Description: dto.Description,
		Icon:        dto.Icon,
		Color:       dto.Color,
	}

	created, err := s.repo.Add(cat)
	if err != nil {
		s.logger.Error("failed to create category", "error", err, "expense_id", dto.ExpenseID)
		return nil, err
	}

	s.logger.Info("category created", "category_id", created.ID, "expense_id", created.ExpenseID)
	return created, nil
}

// Update shallow-merges supplied fields, re-stamps updatedAt and persists.
// Fails with a not-found error when the id is absent.
func (s *Service) Update(id string, dto UpdateCategoryDTO) (*Category, error) {
	existing, found, err := s.repo.Get(id)
	if err != nil {
		s.logger.Error("failed to load category for update", "error", err, "category_id", id)
		return nil, err
	}
	if !found {
		return nil, internal.NewNotFoundError(
			fmt.Sprintf("category with id %s not found", id), internal.ErrCodeCategoryNotFound)
	}

	if dto.Title != nil {
		existing.Title = *dto.Title
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Icon != nil {
		existing.Icon = *dto.Icon
	}
	if dto.Color != nil {
		existing.Color = *dto.Color
	}
	existing.UpdatedAt = internal.NowTimestamp()

	updated, err := s.repo.Update(existing)
	if err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return nil, err
	}

	s.logger.Info("category updated", "category_id", id)
	return updated, nil
}

// Delete removes a category by id, silently for absent ids. Items of the
// category are not cascaded; they stay reachable by id with an orphaned
// expenseCategoryId.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return err
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}

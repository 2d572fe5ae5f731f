package expense

import (
	"fmt"
	"log/slog"

	"github.com/chasselife/xpnse/internal"
	"github.com/google/uuid"
)

// Repository interface defines the data access methods for expenses
type Repository interface {
	Add(exp *Expense) (*Expense, error)
	Get(id string) (*Expense, bool, error)
	GetAll() ([]*Expense, error)
	GetByIndex(index, value string) ([]*Expense, error)
	Update(exp *Expense) (*Expense, error)
	Delete(id string) error
}

// Service handles expense business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new expense service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Expense, error) {
	expenses, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get expenses", "error", err)
		return nil, err
	}
	return expenses, nil
}

// GetByID retrieves an expense by id. Absence is not an error: the result is
// nil when no expense has the id.
func (s *Service) GetByID(id string) (*Expense, error) {
	exp, found, err := s.repo.Get(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return exp, nil
}

// Exists reports whether an expense with the id is stored.
func (s *Service) Exists(id string) (bool, error) {
	_, found, err := s.repo.Get(id)
	if err != nil {
		return false, err
	}
	return found, nil
}

// Create stamps a fresh id and creation timestamps and persists the expense.
// createdAt and updatedAt are identical at creation.
func (s *Service) Create(dto CreateExpenseDTO) (*Expense, error) {
	now := internal.NowTimestamp()
	exp := &Expense{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       dto.Title,
		Description: dto.Description,
		Icon:        dto.Icon,
		Color:       dto.Color,
	}

	created, err := s.repo.Add(exp)
	if err != nil {
		s.logger.Error("failed to create expense", "error", err)
		return nil, err
	}

	s.logger.Info("expense created", "expense_id", created.ID, "title", created.Title)
	return created, nil
}

// Update shallow-merges the supplied fields over the stored record,
// re-stamps updatedAt and persists the full merged record. Updating a
// missing id fails with a not-found error and performs no write.
func (s *Service) Update(id string, dto UpdateExpenseDTO) (*Expense, error) {
	existing, found, err := s.repo.Get(id)
	if err != nil {
		s.logger.Error("failed to load expense for update", "error", err, "expense_id", id)
		return nil, err
	}
	if !found {
		return nil, internal.NewNotFoundError(
			fmt.Sprintf("expense with id %s not found", id), internal.ErrCodeExpenseNotFound)
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
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", id)
	return updated, nil
}

// Delete removes an expense by id. Deleting an absent id succeeds silently,
// and children are not cascaded: categories of a deleted expense stay
// reachable by id.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", id)
	return nil
}

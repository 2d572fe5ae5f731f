package state

import (
	"sync"

	"github.com/chasselife/xpnse/internal/category"
)

// CategoryService is the slice of the category service the container uses.
type CategoryService interface {
	GetByExpenseID(expenseID string) ([]*category.Category, error)
	Create(dto category.CreateCategoryDTO) (*category.Category, error)
	Update(id string, dto category.UpdateCategoryDTO) (*category.Category, error)
	Delete(id string) error
}

// CategoryStore caches the categories of one expense scope.
type CategoryStore struct {
	svc CategoryService

	mu         sync.RWMutex
	categories []*category.Category
	loading    bool
	err        string
	expenseID  string
}

func NewCategoryStore(svc CategoryService) *CategoryStore {
	return &CategoryStore{
		svc:        svc,
		categories: []*category.Category{},
	}
}

// Load replaces the cache with the categories of the expense and records the
// scope id. On failure the error flag is set and the collection resets to
// empty, matching the reference behavior.
func (s *CategoryStore) Load(expenseID string) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.expenseID = expenseID
	s.mu.Unlock()

	categories, err := s.svc.GetByExpenseID(expenseID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.categories = []*category.Category{}
		return
	}
	s.categories = categories
}

// Add creates through the service and appends to the cache.
func (s *CategoryStore) Add(dto category.CreateCategoryDTO) {
	s.begin()

	created, err := s.svc.Create(dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return
	}
	s.categories = append(s.categories, created)
}

// Update persists through the service and replaces the matching record.
func (s *CategoryStore) Update(id string, dto category.UpdateCategoryDTO) {
	s.begin()

	updated, err := s.svc.Update(id, dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return
	}
	for i, cat := range s.categories {
		if cat.ID == updated.ID {
			s.categories[i] = updated
			break
		}
	}
}

// Delete removes from the cache unconditionally after the call settles; a
// failure is still recorded in the error flag.
func (s *CategoryStore) Delete(id string) {
	s.begin()

	err := s.svc.Delete(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
	}
	kept := s.categories[:0]
	for _, cat := range s.categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	s.categories = kept
}

func (s *CategoryStore) Categories() []*category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*category.Category{}, s.categories...)
}

func (s *CategoryStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CategoryStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ExpenseID is the scope id of the last load.
func (s *CategoryStore) ExpenseID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenseID
}

func (s *CategoryStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

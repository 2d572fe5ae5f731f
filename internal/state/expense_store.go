package state

import (
	"sort"
	"strings"
	"sync"

	"github.com/chasselife/xpnse/internal/expense"
)

// ExpenseService is the slice of the expense service the container uses.
type ExpenseService interface {
	GetAll() ([]*expense.Expense, error)
	Create(dto expense.CreateExpenseDTO) (*expense.Expense, error)
	Update(id string, dto expense.UpdateExpenseDTO) (*expense.Expense, error)
	Delete(id string) error
}

// ExpenseStore caches the expense collection and derives a filtered, sorted
// view from the current search query and sort option.
type ExpenseStore struct {
	svc ExpenseService

	mu          sync.RWMutex
	expenses    []*expense.Expense
	filtered    []*expense.Expense
	loading     bool
	err         string
	searchQuery string
	sortOption  SortOption
}

func NewExpenseStore(svc ExpenseService) *ExpenseStore {
	return &ExpenseStore{
		svc:        svc,
		expenses:   []*expense.Expense{},
		filtered:   []*expense.Expense{},
		sortOption: SortByDate,
	}
}

// Load replaces the cached collection from storage. On failure the error
// flag is set and the collection is reset to empty, matching the reference
// behavior rather than keeping last-known-good data.
func (s *ExpenseStore) Load() {
	s.begin()

	expenses, err := s.svc.GetAll()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.expenses = []*expense.Expense{}
	} else {
		s.expenses = expenses
	}
	s.refilterLocked()
}

// Add creates through the service and appends the result to the cache; no
// full reload. On failure only the error flag changes.
func (s *ExpenseStore) Add(dto expense.CreateExpenseDTO) {
	s.begin()

	created, err := s.svc.Create(dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return
	}
	s.expenses = append(s.expenses, created)
	s.refilterLocked()
}

// Update persists through the service and replaces the matching cached
// record in place. On failure only the error flag changes.
func (s *ExpenseStore) Update(id string, dto expense.UpdateExpenseDTO) {
	s.begin()

	updated, err := s.svc.Update(id, dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return
	}
	for i, exp := range s.expenses {
		if exp.ID == updated.ID {
			s.expenses[i] = updated
			break
		}
	}
	s.refilterLocked()
}

// Delete removes the record from the cache unconditionally once the
// underlying delete settles, even when the call itself failed; the error
// flag still records the failure.
func (s *ExpenseStore) Delete(id string) {
	s.begin()

	err := s.svc.Delete(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
	}
	kept := s.expenses[:0]
	for _, exp := range s.expenses {
		if exp.ID != id {
			kept = append(kept, exp)
		}
	}
	s.expenses = kept
	s.refilterLocked()
}

// Search sets the query and recomputes the derived view synchronously.
func (s *ExpenseStore) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.refilterLocked()
}

// Sort sets the sort option and recomputes the derived view synchronously.
func (s *ExpenseStore) Sort(option SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOption = option
	s.refilterLocked()
}

func (s *ExpenseStore) Expenses() []*expense.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*expense.Expense{}, s.expenses...)
}

func (s *ExpenseStore) FilteredExpenses() []*expense.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*expense.Expense{}, s.filtered...)
}

func (s *ExpenseStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ExpenseStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ExpenseStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

func (s *ExpenseStore) SortOption() SortOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOption
}

func (s *ExpenseStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *ExpenseStore) refilterLocked() {
	s.filtered = filterAndSort(s.expenses, s.searchQuery, s.sortOption)
}

func filterAndSort(expenses []*expense.Expense, query string, option SortOption) []*expense.Expense {
	filtered := expenses

	// case-insensitive substring match over title or description
	if strings.TrimSpace(query) != "" {
		q := strings.ToLower(query)
		filtered = []*expense.Expense{}
		for _, exp := range expenses {
			if strings.Contains(strings.ToLower(exp.Title), q) ||
				strings.Contains(strings.ToLower(exp.Description), q) {
				filtered = append(filtered, exp)
			}
		}
	}

	sorted := append([]*expense.Expense{}, filtered...)
	sort.SliceStable(sorted, func(i, j int) bool {
		switch option {
		case SortByTitle:
			return sorted[i].Title < sorted[j].Title
		case SortByCost:
			// cost totals are not available here; falls back to
			// newest-first like the date ordering
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		default: // SortByDate
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		}
	})

	return sorted
}

package state

import (
	"sort"
	"sync"

	"github.com/chasselife/xpnse/internal/item"
)

// ItemService is the slice of the item service the container uses.
type ItemService interface {
	GetByCategoryID(categoryID string) ([]*item.Item, error)
	Create(dto item.CreateItemDTO) (*item.Item, error)
	Update(id string, dto item.UpdateItemDTO) (*item.Item, error)
	Delete(id string) error
}

// ItemStore caches the items of one category scope. TotalCost and DateRange
// are pure functions of the cached collection, computed on read, so they can
// never go stale.
type ItemStore struct {
	svc ItemService

	mu         sync.RWMutex
	items      []*item.Item
	loading    bool
	err        string
	categoryID string
}

func NewItemStore(svc ItemService) *ItemStore {
	return &ItemStore{
		svc:   svc,
		items: []*item.Item{},
	}
}

// Load replaces the cache with the items of the category and records the
// scope id. On failure the error flag is set and the collection resets to
// empty, matching the reference behavior.
func (s *ItemStore) Load(categoryID string) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.categoryID = categoryID
	s.mu.Unlock()

	items, err := s.svc.GetByCategoryID(categoryID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.items = []*item.Item{}
		return
	}
	s.items = items
}

// Add creates through the service and appends to the cache.
func (s *ItemStore) Add(dto item.CreateItemDTO) {
	s.begin()

	created, err := s.svc.Create(dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return
	}
	s.items = append(s.items, created)
}

// Update persists through the service and replaces the matching record.
func (s *ItemStore) Update(id string, dto item.UpdateItemDTO) {
	s.begin()

	updated, err := s.svc.Update(id, dto)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return
	}
	for i, it := range s.items {
		if it.ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
}

// Delete removes from the cache unconditionally after the call settles; a
// failure is still recorded in the error flag.
func (s *ItemStore) Delete(id string) {
	s.begin()

	err := s.svc.Delete(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
	}
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

func (s *ItemStore) Items() []*item.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*item.Item{}, s.items...)
}

func (s *ItemStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ItemStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// CategoryID is the scope id of the last load.
func (s *ItemStore) CategoryID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categoryID
}

// TotalCost sums cost across the cached items.
func (s *ItemStore) TotalCost() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, it := range s.items {
		total += it.Cost
	}
	return total
}

// DateRange is the lexicographic min/max over the cached item dates, nil
// when the cache is empty.
func (s *ItemStore) DateRange() *item.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.items) == 0 {
		return nil
	}
	dates := make([]string, 0, len(s.items))
	for _, it := range s.items {
		dates = append(dates, it.Date)
	}
	sort.Strings(dates)
	return &item.DateRange{Min: dates[0], Max: dates[len(dates)-1]}
}

func (s *ItemStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

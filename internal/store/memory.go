// Package store contains the persistence layer for the Travel Booklet API.
// Storage is in-memory by design: records live for the lifetime of the
// process and are not shared across processes. The service layer depends on
// the Store interface, not the concrete implementation, which allows it to
// be unit-tested with a mock.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/acourtney/travel-booklet/internal/domain"
)

// Store defines the persistence operations for travel preferences.
type Store interface {
	// Create assigns the next sequential id, stores the combined record,
	// and returns it. Ids start at 1, are strictly increasing, and are
	// never reused.
	Create(ctx context.Context, prefs domain.PreferencesInput, content domain.BookletContent) (domain.TravelPreferences, error)

	// Get retrieves a record by id. Returns domain.ErrNotFound if the id
	// has never been issued.
	Get(ctx context.Context, id int) (domain.TravelPreferences, error)
}

// MemoryStore is the in-memory implementation of Store. The mutex guards
// both the id counter and the map so ids stay unique under concurrent
// creation.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]domain.TravelPreferences
}

// NewMemoryStore constructs an empty MemoryStore with ids starting at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		byID:   make(map[int]domain.TravelPreferences),
	}
}

// compile-time check: MemoryStore must satisfy Store.
var _ Store = (*MemoryStore)(nil)

// Create stores validated preferences plus generated booklet content under
// a freshly allocated id. The stored record is immutable: callers receive a
// copy and the map is never written for an existing id.
func (s *MemoryStore) Create(_ context.Context, prefs domain.PreferencesInput, content domain.BookletContent) (domain.TravelPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := domain.TravelPreferences{
		ID:               s.nextID,
		PreferencesInput: prefs,
		BookletContent:   &content,
	}
	s.byID[rec.ID] = rec
	s.nextID++

	return rec, nil
}

// Get returns the record for id, or domain.ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id int) (domain.TravelPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return domain.TravelPreferences{}, fmt.Errorf("store.MemoryStore.Get: id %d: %w", id, domain.ErrNotFound)
	}
	return rec, nil
}

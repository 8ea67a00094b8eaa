package store_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acourtney/travel-booklet/internal/domain"
	"github.com/acourtney/travel-booklet/internal/store"
)

func prefsFixture() domain.PreferencesInput {
	return domain.PreferencesInput{
		Location:          "Paris",
		StartDate:         domain.NewDate(2025, time.June, 1),
		EndDate:           domain.NewDate(2025, time.June, 4),
		Interests:         []string{"Food & Dining"},
		ActivityLevel:     "Moderate",
		DiningPreferences: []string{"Local Cuisine"},
		RestaurantBudget:  2,
	}
}

func bookletFixture() domain.BookletContent {
	return domain.BookletContent{
		Title:    "Paris",
		Summary:  "Four days in Paris.",
		Sections: []domain.BookletSection{{Title: "Dining", Content: "## Bistros"}},
	}
}

func TestMemoryStore_CreateAssignsSequentialIDs(t *testing.T) {
	s := store.NewMemoryStore()

	first, err := s.Create(context.Background(), prefsFixture(), bookletFixture())
	require.NoError(t, err)
	second, err := s.Create(context.Background(), prefsFixture(), bookletFixture())
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestMemoryStore_GetReturnsStoredRecord(t *testing.T) {
	s := store.NewMemoryStore()

	created, err := s.Create(context.Background(), prefsFixture(), bookletFixture())
	require.NoError(t, err)

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.BookletContent)
	assert.Equal(t, "Paris", got.BookletContent.Title)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	s := store.NewMemoryStore()

	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestMemoryStore_ConcurrentCreate verifies that ids stay unique and
// strictly increasing when many creations race.
func TestMemoryStore_ConcurrentCreate(t *testing.T) {
	const n = 100
	s := store.NewMemoryStore()

	ids := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := s.Create(context.Background(), prefsFixture(), bookletFixture())
			assert.NoError(t, err)
			ids[i] = rec.ID
		}(i)
	}
	wg.Wait()

	sort.Ints(ids)
	for i, id := range ids {
		// No duplicates and no gaps: exactly 1..n in some interleaving.
		assert.Equal(t, i+1, id)
	}
}

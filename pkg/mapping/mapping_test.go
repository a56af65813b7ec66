//go:build unit

package mapping

import (
	"sync"
	"testing"
	"time"

	"github.com/lerenn/issues-full/pkg/cache"
	"github.com/lerenn/issues-full/pkg/issue"
	"github.com/lerenn/issues-full/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_SetGet(t *testing.T) {
	m := New(store.NewMemoryStore())

	_, found := m.Get(1)
	assert.False(t, found)

	m.Set(1, issue.Full{ID: 99})
	full, found := m.Get(1)
	assert.True(t, found)
	assert.Equal(t, int64(99), full.ID)
	assert.Equal(t, 1, m.Len())
}

func TestMapping_EntriesOrder(t *testing.T) {
	m := New(store.NewMemoryStore())

	m.Set(3, issue.Full{ID: 30})
	m.Set(1, issue.Full{ID: 10})
	m.Set(3, issue.Full{ID: 31})

	assert.Equal(t, []Entry{
		{PreviewID: 3, Full: issue.Full{ID: 31}},
		{PreviewID: 1, Full: issue.Full{ID: 10}},
	}, m.Entries())
}

func TestMapping_SaveLoad(t *testing.T) {
	s := store.NewMemoryStore()
	updated := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	m := New(s)
	m.Set(1, issue.Full{ID: 99, UpdatedAt: updated})
	m.Set(2, issue.Full{ID: 100, UpdatedAt: updated})
	require.NoError(t, m.Save())

	restored, err := Load(s)
	require.NoError(t, err)
	assert.Equal(t, m.Entries(), restored.Entries())
}

func TestMapping_LoadEmpty(t *testing.T) {
	m, err := Load(store.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestMapping_SaveDoesNotTouchCacheKey(t *testing.T) {
	s := store.NewMemoryStore()
	m := New(s)
	m.Set(1, issue.Full{ID: 99})
	require.NoError(t, m.Save())

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{Key}, keys)
	assert.NotEqual(t, cache.Key, Key)
}

func TestMapping_ConcurrentSet(t *testing.T) {
	m := New(store.NewMemoryStore())

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.Set(id, issue.Full{ID: id * 10})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, m.Len())
}

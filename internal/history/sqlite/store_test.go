package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpar/yarc/internal/history"
)

// TestSQLiteStore runs the standard store test suite against SQLite.
func TestSQLiteStore(t *testing.T) {
	history.RunStoreTests(t, func() (history.Store, func()) {
		store, err := NewInMemory()
		require.NoError(t, err)
		return store, func() {
			store.Close()
		}
	})
}

func TestSQLiteStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store, err := New(dbPath)
	require.NoError(t, err)

	id, err := store.Add(context.Background(), history.Entry{
		Timestamp: time.Now(),
		Method:    "GET",
		URL:       "https://example.com",
		Status:    200,
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "GET", got.Method)
	assert.Equal(t, "https://example.com", got.URL)
}

func TestSQLiteStore_Concurrent(t *testing.T) {
	store, err := NewInMemory()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_, err := store.Add(ctx, history.Entry{Method: "GET", URL: "https://example.com"})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	n, err := store.Count(ctx, history.QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)
}

func TestBuildListQuery(t *testing.T) {
	t.Run("offset without limit is unbounded", func(t *testing.T) {
		query, args := buildListQuery(history.QueryOptions{Offset: 3}, false)
		assert.Contains(t, query, "LIMIT ? OFFSET ?")
		assert.Equal(t, []any{-1, 3}, args)
	})

	t.Run("count skips ordering", func(t *testing.T) {
		query, _ := buildListQuery(history.QueryOptions{Limit: 5}, true)
		assert.NotContains(t, query, "ORDER BY")
		assert.NotContains(t, query, "LIMIT")
	})
}

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreTests runs the standard store test suite against any Store implementation.
func RunStoreTests(t *testing.T, newStore func() (Store, func())) {
	t.Run("Add", func(t *testing.T) {
		runAddTests(t, newStore)
	})
	t.Run("Get", func(t *testing.T) {
		runGetTests(t, newStore)
	})
	t.Run("List", func(t *testing.T) {
		runListTests(t, newStore)
	})
	t.Run("Delete", func(t *testing.T) {
		runDeleteTests(t, newStore)
	})
	t.Run("Prune", func(t *testing.T) {
		runPruneTests(t, newStore)
	})
	t.Run("Closed", func(t *testing.T) {
		runClosedTests(t, newStore)
	})
}

func addEntries(t *testing.T, store Store, entries ...Entry) []string {
	t.Helper()
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		id, err := store.Add(context.Background(), e)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// sequential returns n GET entries one second apart, oldest first.
func sequential(n int) []Entry {
	base := time.Now().Add(-time.Hour)
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Method:    "GET",
			URL:       "https://api.example.com",
			Status:    200,
		}
	}
	return entries
}

func runAddTests(t *testing.T, newStore func() (Store, func())) {
	t.Run("adds entry and returns ID", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		id, err := store.Add(context.Background(), Entry{
			Timestamp:    time.Now(),
			Method:       "GET",
			URL:          "https://api.example.com/users",
			Status:       200,
			ResponseTime: 150,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("keeps a caller supplied ID", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		id, err := store.Add(context.Background(), Entry{ID: "fixed", Timestamp: time.Now(), Method: "GET", URL: "x"})

		require.NoError(t, err)
		assert.Equal(t, "fixed", id)
	})

	t.Run("records failures", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		id, err := store.Add(context.Background(), Entry{
			Timestamp: time.Now(),
			Method:    "POST",
			URL:       "http://localhost:1",
			Error:     "connection refused",
		})
		require.NoError(t, err)

		got, err := store.Get(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, got.Failed())
		assert.Equal(t, "connection refused", got.Error)
	})
}

func runGetTests(t *testing.T, newStore func() (Store, func())) {
	t.Run("returns every field", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		entry := Entry{
			Timestamp:    time.Now().Truncate(time.Millisecond),
			Method:       "DELETE",
			URL:          "https://api.example.com/items/7",
			Status:       204,
			StatusText:   "204 No Content",
			ResponseTime: 33,
			ResponseSize: 0,
		}
		id, err := store.Add(context.Background(), entry)
		require.NoError(t, err)

		got, err := store.Get(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, id, got.ID)
		assert.Equal(t, entry.Method, got.Method)
		assert.Equal(t, entry.URL, got.URL)
		assert.Equal(t, entry.Status, got.Status)
		assert.Equal(t, entry.StatusText, got.StatusText)
		assert.Equal(t, entry.ResponseTime, got.ResponseTime)
		assert.True(t, entry.Timestamp.Equal(got.Timestamp))
	})

	t.Run("unknown ID", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		_, err := store.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty ID", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		_, err := store.Get(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func runListTests(t *testing.T, newStore func() (Store, func())) {
	t.Run("lists newest first", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		ids := addEntries(t, store, sequential(3)...)

		entries, err := store.List(context.Background(), QueryOptions{})

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, ids[2], entries[0].ID)
		assert.Equal(t, ids[0], entries[2].ID)
	})

	t.Run("filters by method", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		entries := sequential(5)
		for i, method := range []string{"GET", "POST", "GET", "PUT", "GET"} {
			entries[i].Method = method
		}
		addEntries(t, store, entries...)

		got, err := store.List(context.Background(), QueryOptions{Method: "GET"})

		require.NoError(t, err)
		assert.Len(t, got, 3)
		for _, e := range got {
			assert.Equal(t, "GET", e.Method)
		}
	})

	t.Run("filters by URL and failure", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		entries := sequential(3)
		entries[0].URL = "https://api.example.com/users"
		entries[1].URL = "https://other.example.com/"
		entries[2].URL = "https://api.example.com/items"
		entries[2].Error = "timeout"
		addEntries(t, store, entries...)

		got, err := store.List(context.Background(), QueryOptions{URLPattern: "api.example"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = store.List(context.Background(), QueryOptions{FailedOnly: true})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "timeout", got[0].Error)
	})

	t.Run("paginates", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		ids := addEntries(t, store, sequential(5)...)

		got, err := store.List(context.Background(), QueryOptions{Limit: 2, Offset: 1})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[3], got[0].ID)
		assert.Equal(t, ids[2], got[1].ID)
	})

	t.Run("counts", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		addEntries(t, store, sequential(4)...)

		n, err := store.Count(context.Background(), QueryOptions{Limit: 1})

		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}

func runDeleteTests(t *testing.T, newStore func() (Store, func())) {
	t.Run("deletes by ID", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		ids := addEntries(t, store, sequential(2)...)

		require.NoError(t, store.Delete(context.Background(), ids[0]))

		_, err := store.Get(context.Background(), ids[0])
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, store.Delete(context.Background(), ids[0]), ErrNotFound)
	})

	t.Run("clears everything", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		addEntries(t, store, sequential(3)...)

		require.NoError(t, store.Clear(context.Background()))

		n, err := store.Count(context.Background(), QueryOptions{})
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func runPruneTests(t *testing.T, newStore func() (Store, func())) {
	t.Run("keeps the newest entries", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		ids := addEntries(t, store, sequential(5)...)

		removed, err := store.Prune(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)

		got, err := store.List(context.Background(), QueryOptions{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[4], got[0].ID)
		assert.Equal(t, ids[3], got[1].ID)
	})

	t.Run("no-op under the limit", func(t *testing.T) {
		store, cleanup := newStore()
		defer cleanup()

		addEntries(t, store, sequential(2)...)

		removed, err := store.Prune(context.Background(), 10)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func runClosedTests(t *testing.T, newStore func() (Store, func())) {
	store, cleanup := newStore()
	defer cleanup()

	require.NoError(t, store.Close())

	_, err := store.Add(context.Background(), Entry{Method: "GET"})
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = store.List(context.Background(), QueryOptions{})
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.NoError(t, store.Close())
}

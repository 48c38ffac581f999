package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowTable(t *testing.T) {
	t.Run("is never empty", func(t *testing.T) {
		table := NewRowTable()
		assert.Equal(t, 1, table.Len())
		assert.True(t, table.Row(0).IsEmpty())
	})

	t.Run("keeps pairs in order", func(t *testing.T) {
		table := NewRowTable(Pair{"Accept", "*/*"}, Pair{"X-Id", "1"})
		assert.Equal(t, 2, table.Len())
		assert.Equal(t, []Pair{{"Accept", "*/*"}, {"X-Id", "1"}}, table.Pairs())
	})

	t.Run("row index is clamped", func(t *testing.T) {
		table := NewRowTable(Pair{"a", "1"})
		assert.Equal(t, "a", table.Row(-3).Key.Value())
		assert.Equal(t, "a", table.Row(7).Key.Value())
	})

	t.Run("appends only after a filled row", func(t *testing.T) {
		table := NewRowTable()
		assert.False(t, table.AppendIfFilled())
		assert.Equal(t, 1, table.Len())

		table.Row(0).Key.InsertChar('k')
		assert.True(t, table.AppendIfFilled())
		assert.Equal(t, 2, table.Len())
		assert.Equal(t, 1, table.Last())
	})

	t.Run("pairs skip empty rows", func(t *testing.T) {
		table := NewRowTable(Pair{"a", "1"}, Pair{"", ""}, Pair{"", "v"})
		assert.Equal(t, []Pair{{"a", "1"}, {"", "v"}}, table.Pairs())
	})
}

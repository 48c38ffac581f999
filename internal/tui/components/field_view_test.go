package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/artpar/yarc/internal/tui/textfield"
)

func plainView() *FieldView {
	return NewFieldView(DefaultFieldStyles())
}

func TestFieldView_Render(t *testing.T) {
	t.Run("pads to the requested rows", func(t *testing.T) {
		lines := plainView().Render(textfield.NewLine("hello"), 10, 3, false)
		assert.Equal(t, []string{"hello", "", ""}, lines)
	})

	t.Run("clips to the column budget", func(t *testing.T) {
		lines := plainView().Render(textfield.NewLine("hello world"), 5, 1, false)
		assert.Equal(t, []string{"hello"}, lines)
	})

	t.Run("clips by display width", func(t *testing.T) {
		lines := plainView().Render(textfield.NewLine("日本語"), 5, 1, false)
		assert.Equal(t, []string{"日本"}, lines)
	})

	t.Run("draws tabs as one cell", func(t *testing.T) {
		lines := plainView().Render(textfield.NewLine("a\tbcdef"), 6, 1, false)
		assert.Equal(t, []string{"a bcde"}, lines)
		assert.Equal(t, 6, lipgloss.Width(lines[0]))
	})

	t.Run("starts at the scroll offset", func(t *testing.T) {
		f := textfield.NewReadOnly("zero\none\ntwo\nthree")
		f.Scroll(1, 2)

		lines := plainView().Render(f, 10, 2, false)

		assert.Equal(t, []string{"wo", "hree"}, lines)
	})

	t.Run("draws a cursor cell past the end", func(t *testing.T) {
		f := textfield.NewLine("ab")
		f.MoveCursor(textfield.End)

		assert.Equal(t, []string{"ab "}, plainView().Render(f, 10, 1, true))
		assert.Equal(t, []string{"ab"}, plainView().Render(f, 10, 1, false))
	})

	t.Run("empty budget", func(t *testing.T) {
		assert.Nil(t, plainView().Render(textfield.NewLine("x"), 0, 1, true))
		assert.Nil(t, plainView().Render(textfield.Null{}, 5, 0, true))
	})
}

func TestSelectionRange(t *testing.T) {
	t.Run("inactive without an anchor", func(t *testing.T) {
		s := selectionRange(textfield.NewLine("abc"))
		assert.False(t, s.contains(0, 0))
	})

	t.Run("orders anchor and cursor", func(t *testing.T) {
		f := textfield.NewReadOnly("abcd\nefgh")
		f.MoveCursor(textfield.NextLine)
		f.MoveCursor(textfield.NextChar)
		f.StartSelection()
		f.MoveCursor(textfield.PrevLine)
		f.MoveCursor(textfield.NextChar)

		s := selectionRange(f)

		assert.False(t, s.contains(1, 0))
		assert.True(t, s.contains(2, 0))
		assert.True(t, s.contains(3, 0))
		assert.True(t, s.contains(0, 1))
		assert.True(t, s.contains(1, 1))
		assert.False(t, s.contains(2, 1))
	})
}

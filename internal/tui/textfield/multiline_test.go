package textfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOnly_Navigation(t *testing.T) {
	t.Run("next and prev line clamp column", func(t *testing.T) {
		f := NewReadOnly("a long line\nab\nanother long line")
		f.MoveCursor(LineEnd)
		f.MoveCursor(NextLine)
		col, row := f.Cursor()
		assert.Equal(t, 2, col)
		assert.Equal(t, 1, row)

		f.MoveCursor(PrevLine)
		col, row = f.Cursor()
		assert.Equal(t, 2, col)
		assert.Equal(t, 0, row)
	})

	t.Run("line motions stop at first and last rows", func(t *testing.T) {
		f := NewReadOnly("one\ntwo")
		f.MoveCursor(PrevLine)
		_, row := f.Cursor()
		assert.Equal(t, 0, row)

		f.MoveCursor(NextLine)
		f.MoveCursor(NextLine)
		_, row = f.Cursor()
		assert.Equal(t, 1, row)
	})

	t.Run("head and end", func(t *testing.T) {
		f := NewReadOnly("first\nsecond\nthird!")
		f.MoveCursor(End)
		col, row := f.Cursor()
		assert.Equal(t, 6, col)
		assert.Equal(t, 2, row)

		f.MoveCursor(Head)
		col, row = f.Cursor()
		assert.Equal(t, 0, col)
		assert.Equal(t, 0, row)
	})

	t.Run("length counts runes of current row", func(t *testing.T) {
		f := NewReadOnly("ascii\nüñí")
		f.MoveCursor(NextLine)
		assert.Equal(t, 3, f.Len())
	})

	t.Run("next word crosses to first non-whitespace of next row", func(t *testing.T) {
		f := NewReadOnly("foo bar\n   baz")
		f.MoveCursor(NextWord)
		col, row := f.Cursor()
		assert.Equal(t, 4, col)
		assert.Equal(t, 0, row)

		f.MoveCursor(NextWord)
		col, row = f.Cursor()
		assert.Equal(t, 3, col)
		assert.Equal(t, 1, row)
	})

	t.Run("next word onto blank row lands at zero", func(t *testing.T) {
		f := NewReadOnly("foo\n    ")
		f.MoveCursor(NextWord)
		col, row := f.Cursor()
		assert.Equal(t, 0, col)
		assert.Equal(t, 1, row)
	})

	t.Run("next word on last row goes to line end", func(t *testing.T) {
		f := NewReadOnly("foo   ")
		f.MoveCursor(NextWord)
		col, _ := f.Cursor()
		assert.Equal(t, 6, col)
	})

	t.Run("prev word crosses to previous row", func(t *testing.T) {
		f := NewReadOnly("  foo bar\nbaz")
		f.MoveCursor(NextLine)
		f.MoveCursor(PrevWord)
		col, row := f.Cursor()
		assert.Equal(t, 2, col)
		assert.Equal(t, 0, row)
	})

	t.Run("prev word onto blank row lands at its end", func(t *testing.T) {
		f := NewReadOnly("   \nbaz")
		f.MoveCursor(NextLine)
		f.MoveCursor(PrevWord)
		col, row := f.Cursor()
		assert.Equal(t, 3, col)
		assert.Equal(t, 0, row)
	})

	t.Run("prev word on first row at zero stays", func(t *testing.T) {
		f := NewReadOnly("foo")
		f.MoveCursor(PrevWord)
		col, row := f.Cursor()
		assert.Equal(t, 0, col)
		assert.Equal(t, 0, row)
	})
}

func TestReadOnly_NeverMutates(t *testing.T) {
	f := NewReadOnly("line one\nline two")
	f.MoveCursor(NextChar)
	f.InsertChar('x')
	f.InsertNewline()
	f.DeleteChar()
	f.DeleteNextChar()
	assert.Equal(t, "line one\nline two", f.Value())
	assert.Equal(t, KindReadOnly, f.Kind())
}

func TestReadOnly_Scroll(t *testing.T) {
	f := NewReadOnly("abc\ndef\nghi")
	f.Scroll(2, 2)
	col, row := f.ScrollOffset()
	assert.Equal(t, 2, col)
	assert.Equal(t, 2, row)

	f.Scroll(10, 10)
	col, row = f.ScrollOffset()
	assert.Equal(t, 3, col)
	assert.Equal(t, 3, row)

	f.Scroll(-10, -1)
	col, row = f.ScrollOffset()
	assert.Equal(t, 0, col)
	assert.Equal(t, 2, row)
}

func TestReadOnly_Selection(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		f := NewReadOnly("status: 200 OK")
		f.MoveCursor(NextWord)
		f.MoveCursor(NextWord)
		f.StartSelection()
		f.MoveCursor(NextChar)
		f.MoveCursor(NextChar)
		text, ok := f.Selection()
		require.True(t, ok)
		assert.Equal(t, "200", text)
	})

	t.Run("spans rows", func(t *testing.T) {
		f := NewReadOnly("abc\ndef\nghi")
		f.MoveCursor(NextChar)
		f.StartSelection()
		f.MoveCursor(NextLine)
		f.MoveCursor(NextLine)
		text, ok := f.Selection()
		require.True(t, ok)
		assert.Equal(t, "bc\ndef\ngh", text)
	})

	t.Run("anchor is kept when cursor moves before it", func(t *testing.T) {
		f := NewReadOnly("abc\ndef")
		f.MoveCursor(NextLine)
		f.StartSelection()
		f.MoveCursor(Head)
		col, row, ok := f.SelectionAnchor()
		require.True(t, ok)
		assert.Equal(t, 0, col)
		assert.Equal(t, 1, row)

		text, _ := f.Selection()
		assert.Equal(t, "abc\nd", text)
	})
}

func TestBuffer_Editing(t *testing.T) {
	t.Run("insert newline splits the row", func(t *testing.T) {
		b := NewBuffer(`{"a":1}`)
		b.MoveCursor(NextChar)
		b.InsertNewline()
		assert.Equal(t, "{\n\"a\":1}", b.Value())
		col, row := b.Cursor()
		assert.Equal(t, 0, col)
		assert.Equal(t, 1, row)
	})

	t.Run("delete at row start joins with previous row", func(t *testing.T) {
		b := NewBuffer("ab\ncd")
		b.MoveCursor(NextLine)
		b.DeleteChar()
		assert.Equal(t, "abcd", b.Value())
		col, row := b.Cursor()
		assert.Equal(t, 2, col)
		assert.Equal(t, 0, row)
	})

	t.Run("delete next at row end joins next row", func(t *testing.T) {
		b := NewBuffer("ab\ncd")
		b.MoveCursor(LineEnd)
		b.DeleteNextChar()
		assert.Equal(t, "abcd", b.Value())
		assert.Equal(t, 1, b.LineCount())
	})

	t.Run("delete next at end of buffer is a no-op", func(t *testing.T) {
		b := NewBuffer("ab")
		b.MoveCursor(End)
		b.DeleteNextChar()
		assert.Equal(t, "ab", b.Value())
	})

	t.Run("insert then delete restores", func(t *testing.T) {
		b := NewBuffer("héllo\nwörld")
		b.MoveCursor(NextLine)
		b.MoveCursor(NextChar)
		b.InsertChar('!')
		b.DeleteChar()
		assert.Equal(t, "héllo\nwörld", b.Value())
		col, row := b.Cursor()
		assert.Equal(t, 1, col)
		assert.Equal(t, 1, row)
	})
}

func TestNull(t *testing.T) {
	var f Field = Null{}
	f.InsertChar('x')
	f.MoveCursor(End)
	f.StartSelection()
	f.Scroll(3, 3)

	assert.Equal(t, "", f.Value())
	assert.Equal(t, 0, f.Len())
	col, row := f.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
	_, ok := f.Selection()
	assert.False(t, ok)
}

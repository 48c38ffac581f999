// Package textfield implements the editable and read-only text buffers that
// back every input slot of a request. Positions are counted in runes.
package textfield

import "unicode/utf8"

// CursorMove identifies a cursor motion.
type CursorMove int

const (
	NextChar CursorMove = iota
	PrevChar
	NextWord
	PrevWord
	LineHead
	LineEnd
	Head
	End
	NextLine
	PrevLine
)

// String returns the motion name.
func (m CursorMove) String() string {
	switch m {
	case NextChar:
		return "next-char"
	case PrevChar:
		return "prev-char"
	case NextWord:
		return "next-word"
	case PrevWord:
		return "prev-word"
	case LineHead:
		return "line-head"
	case LineEnd:
		return "line-end"
	case Head:
		return "head"
	case End:
		return "end"
	case NextLine:
		return "next-line"
	case PrevLine:
		return "prev-line"
	default:
		return "unknown"
	}
}

// Kind is the closed set of field variants.
type Kind int

const (
	KindNull Kind = iota
	KindLine
	KindReadOnly
	KindBuffer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindLine:
		return "line"
	case KindReadOnly:
		return "read-only"
	case KindBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// Field is the capability interface shared by all field variants.
// Every method is total: out-of-range positions are clamped and
// unsupported mutations are no-ops.
type Field interface {
	Kind() Kind

	// Value returns the full text, rows joined by "\n".
	Value() string

	// Len returns the rune length of the cursor's row.
	Len() int

	// LineCount returns the number of rows (at least 1).
	LineCount() int

	// Line returns row i, or "" when out of range.
	Line(i int) string

	Cursor() (col, row int)
	ScrollOffset() (col, row int)
	MoveCursor(m CursorMove)
	Scroll(cols, rows int)

	InsertChar(r rune)
	InsertNewline()
	DeleteChar()
	DeleteNextChar()

	StartSelection()
	CancelSelection()

	// SelectionAnchor reports the fixed end of an active selection.
	SelectionAnchor() (col, row int, ok bool)

	// Selection returns the text between anchor and cursor, inclusive of
	// the rune under the cursor.
	Selection() (string, bool)
}

// byteOffset translates a rune index into a byte offset within s. Indexes
// past the end map to len(s).
func byteOffset(s string, col int) int {
	if col <= 0 {
		return 0
	}
	i := 0
	for off := range s {
		if i == col {
			return off
		}
		i++
	}
	return len(s)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// sliceRunes returns s[from:to] in rune units, clamped.
func sliceRunes(s string, from, to int) string {
	n := runeLen(s)
	from = clamp(from, 0, n)
	to = clamp(to, from, n)
	return s[byteOffset(s, from):byteOffset(s, to)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

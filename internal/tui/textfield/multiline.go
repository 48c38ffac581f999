package textfield

import "strings"

// multiline holds the navigation state shared by the multi-line variants.
type multiline struct {
	lines     []string
	col       int
	row       int
	scrollCol int
	scrollRow int
	anchorCol int
	anchorRow int
	selecting bool
}

func newMultiline(text string) multiline {
	return multiline{lines: strings.Split(text, "\n")}
}

func (m *multiline) current() string { return m.lines[m.row] }

func (m *multiline) Value() string { return strings.Join(m.lines, "\n") }

func (m *multiline) Len() int { return runeLen(m.current()) }

func (m *multiline) LineCount() int { return len(m.lines) }

func (m *multiline) Line(i int) string {
	if i < 0 || i >= len(m.lines) {
		return ""
	}
	return m.lines[i]
}

func (m *multiline) Cursor() (int, int) { return m.col, m.row }

func (m *multiline) ScrollOffset() (int, int) { return m.scrollCol, m.scrollRow }

func (m *multiline) last() int { return len(m.lines) - 1 }

func (m *multiline) MoveCursor(mv CursorMove) {
	switch mv {
	case NextChar:
		m.col = min(m.col+1, m.Len())
	case PrevChar:
		m.col = max(m.col-1, 0)
	case NextLine:
		m.row = min(m.row+1, m.last())
		m.col = min(m.col, m.Len())
	case PrevLine:
		m.row = max(m.row-1, 0)
		m.col = min(m.col, m.Len())
	case NextWord:
		if i, ok := NextWordStart(m.current(), m.col); ok {
			m.col = i
			return
		}
		if m.row < m.last() {
			m.row++
			m.col, _ = firstNonSpace(m.current())
			return
		}
		m.col = m.Len()
	case PrevWord:
		if i, ok := PrevWordStart(m.current(), m.col); ok {
			m.col = i
			return
		}
		if m.row > 0 {
			m.row--
			if i, ok := firstNonSpace(m.current()); ok {
				m.col = i
			} else {
				m.col = m.Len()
			}
			return
		}
		m.col = 0
	case LineHead:
		m.col = 0
	case LineEnd:
		m.col = m.Len()
	case Head:
		m.col, m.row = 0, 0
	case End:
		m.row = m.last()
		m.col = m.Len()
	}
}

func (m *multiline) Scroll(cols, rows int) {
	m.scrollCol = clamp(m.scrollCol+cols, 0, m.Len())
	m.scrollRow = clamp(m.scrollRow+rows, 0, len(m.lines))
}

func (m *multiline) StartSelection() {
	m.anchorCol, m.anchorRow = m.col, m.row
	m.selecting = true
}

func (m *multiline) CancelSelection() {
	m.selecting = false
}

func (m *multiline) SelectionAnchor() (int, int, bool) {
	return m.anchorCol, m.anchorRow, m.selecting
}

func (m *multiline) Selection() (string, bool) {
	if !m.selecting {
		return "", false
	}

	fromCol, fromRow, toCol, toRow := m.anchorCol, m.anchorRow, m.col, m.row
	if fromRow > toRow || (fromRow == toRow && fromCol > toCol) {
		fromCol, fromRow, toCol, toRow = toCol, toRow, fromCol, fromRow
	}
	fromRow = clamp(fromRow, 0, m.last())
	toRow = clamp(toRow, 0, m.last())

	if fromRow == toRow {
		return sliceRunes(m.lines[fromRow], fromCol, toCol+1), true
	}

	var b strings.Builder
	b.WriteString(sliceRunes(m.lines[fromRow], fromCol, runeLen(m.lines[fromRow])))
	for r := fromRow + 1; r < toRow; r++ {
		b.WriteByte('\n')
		b.WriteString(m.lines[r])
	}
	b.WriteByte('\n')
	b.WriteString(sliceRunes(m.lines[toRow], 0, toCol+1))
	return b.String(), true
}

// ReadOnly is a scrollable, selectable multi-line field whose text never
// changes after construction.
type ReadOnly struct {
	multiline
}

// NewReadOnly splits text on "\n" into rows.
func NewReadOnly(text string) *ReadOnly {
	return &ReadOnly{multiline: newMultiline(text)}
}

func (f *ReadOnly) Kind() Kind { return KindReadOnly }

func (f *ReadOnly) InsertChar(rune) {}
func (f *ReadOnly) InsertNewline() {}
func (f *ReadOnly) DeleteChar() {}
func (f *ReadOnly) DeleteNextChar() {}

// Buffer is an editable multi-line field.
type Buffer struct {
	multiline
}

// NewBuffer splits text on "\n" into rows.
func NewBuffer(text string) *Buffer {
	return &Buffer{multiline: newMultiline(text)}
}

func (b *Buffer) Kind() Kind { return KindBuffer }

func (b *Buffer) InsertChar(r rune) {
	line := b.current()
	off := byteOffset(line, b.col)
	b.lines[b.row] = line[:off] + string(r) + line[off:]
	b.MoveCursor(NextChar)
}

// InsertNewline splits the row at the cursor.
func (b *Buffer) InsertNewline() {
	line := b.current()
	off := byteOffset(line, b.col)

	lines := make([]string, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:b.row]...)
	lines = append(lines, line[:off], line[off:])
	lines = append(lines, b.lines[b.row+1:]...)
	b.lines = lines

	b.row++
	b.col = 0
}

// DeleteChar removes the rune before the cursor, joining with the
// previous row at column 0.
func (b *Buffer) DeleteChar() {
	if b.col == 0 {
		if b.row == 0 {
			return
		}
		prev := b.lines[b.row-1]
		b.col = runeLen(prev)
		b.lines[b.row-1] = prev + b.current()
		b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
		b.row--
		return
	}

	line := b.current()
	from := byteOffset(line, b.col-1)
	to := byteOffset(line, b.col)
	b.lines[b.row] = line[:from] + line[to:]
	b.col--
}

// DeleteNextChar removes the rune under the cursor, joining the next row
// at end of line.
func (b *Buffer) DeleteNextChar() {
	line := b.current()
	if b.col >= runeLen(line) {
		if b.row == b.last() {
			return
		}
		b.lines[b.row] = line + b.lines[b.row+1]
		b.lines = append(b.lines[:b.row+1], b.lines[b.row+2:]...)
		return
	}

	from := byteOffset(line, b.col)
	to := byteOffset(line, b.col+1)
	b.lines[b.row] = line[:from] + line[to:]
}

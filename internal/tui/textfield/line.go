package textfield

// Line is a mutable single-line field.
type Line struct {
	value     string
	col       int
	scrollCol int
	anchor    int
	selecting bool
}

// NewLine creates a single-line field holding value with the cursor at 0.
func NewLine(value string) *Line {
	return &Line{value: value}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Value() string { return l.value }

// String implements fmt.Stringer.
func (l *Line) String() string { return l.value }

func (l *Line) Len() int { return runeLen(l.value) }

func (l *Line) LineCount() int { return 1 }

func (l *Line) Line(i int) string {
	if i != 0 {
		return ""
	}
	return l.value
}

func (l *Line) Cursor() (int, int) { return l.col, 0 }

func (l *Line) ScrollOffset() (int, int) { return l.scrollCol, 0 }

// MoveCursor applies m. Line motions are no-ops and whole-buffer motions
// act on the line.
func (l *Line) MoveCursor(m CursorMove) {
	switch m {
	case NextChar:
		l.col = min(l.col+1, l.Len())
	case PrevChar:
		l.col = max(l.col-1, 0)
	case NextWord:
		if i, ok := NextWordStart(l.value, l.col); ok {
			l.col = i
		} else {
			l.col = l.Len()
		}
	case PrevWord:
		if i, ok := PrevWordStart(l.value, l.col); ok {
			l.col = i
		} else {
			l.col = 0
		}
	case LineHead, Head:
		l.col = 0
	case LineEnd, End:
		l.col = l.Len()
	case NextLine, PrevLine:
	}
}

// Scroll shifts the horizontal scroll offset; rows are ignored.
func (l *Line) Scroll(cols, _ int) {
	l.scrollCol = clamp(l.scrollCol+cols, 0, l.Len())
}

func (l *Line) InsertChar(r rune) {
	off := byteOffset(l.value, l.col)
	l.value = l.value[:off] + string(r) + l.value[off:]
	l.MoveCursor(NextChar)
}

func (l *Line) InsertNewline() {}

func (l *Line) DeleteChar() {
	if l.col == 0 {
		return
	}
	from := byteOffset(l.value, l.col-1)
	to := byteOffset(l.value, l.col)
	l.value = l.value[:from] + l.value[to:]
	l.MoveCursor(PrevChar)
}

func (l *Line) DeleteNextChar() {
	if l.col >= l.Len() {
		return
	}
	from := byteOffset(l.value, l.col)
	to := byteOffset(l.value, l.col+1)
	l.value = l.value[:from] + l.value[to:]
}

func (l *Line) StartSelection() {
	l.anchor = l.col
	l.selecting = true
}

func (l *Line) CancelSelection() {
	l.selecting = false
}

func (l *Line) SelectionAnchor() (int, int, bool) {
	return l.anchor, 0, l.selecting
}

func (l *Line) Selection() (string, bool) {
	if !l.selecting {
		return "", false
	}
	from, to := min(l.anchor, l.col), max(l.anchor, l.col)
	return sliceRunes(l.value, from, to+1), true
}

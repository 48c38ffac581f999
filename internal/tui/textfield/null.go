package textfield

// Null is the field used where a panel has no text target. It is always
// empty and ignores every operation.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) Value() string { return "" }
func (Null) Len() int { return 0 }
func (Null) LineCount() int { return 1 }
func (Null) Line(int) string { return "" }
func (Null) Cursor() (int, int) { return 0, 0 }
func (Null) ScrollOffset() (int, int) { return 0, 0 }
func (Null) MoveCursor(CursorMove) {}
func (Null) Scroll(int, int) {}
func (Null) InsertChar(rune) {}
func (Null) InsertNewline() {}
func (Null) DeleteChar() {}
func (Null) DeleteNextChar() {}
func (Null) StartSelection() {}
func (Null) CancelSelection() {}
func (Null) SelectionAnchor() (int, int, bool) { return 0, 0, false }
func (Null) Selection() (string, bool) { return "", false }

var (
	_ Field = (*Line)(nil)
	_ Field = (*ReadOnly)(nil)
	_ Field = (*Buffer)(nil)
	_ Field = Null{}
)

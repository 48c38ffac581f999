package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/artpar/yarc/internal/tui/textfield"
)

// FieldStyles are the styles used when drawing a text field.
type FieldStyles struct {
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Selection lipgloss.Style
}

// DefaultFieldStyles returns the standard field styles.
func DefaultFieldStyles() FieldStyles {
	return FieldStyles{
		Text:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("229")),
	}
}

// FieldView draws the visible window of a text field. It only reads the
// field; scrolling is done by the caller before drawing.
type FieldView struct {
	styles FieldStyles
}

// NewFieldView creates a field view with the given styles.
func NewFieldView(styles FieldStyles) *FieldView {
	return &FieldView{styles: styles}
}

// Render returns rows lines, each at most cols cells wide. The cursor is
// drawn only when focused is set.
func (v *FieldView) Render(f textfield.Field, cols, rows int, focused bool) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	scrollCol, scrollRow := f.ScrollOffset()
	cursorCol, cursorRow := f.Cursor()
	sel := selectionRange(f)

	lines := make([]string, 0, rows)
	for r := scrollRow; r < scrollRow+rows; r++ {
		if r >= f.LineCount() {
			lines = append(lines, "")
			continue
		}

		cursor := -1
		if focused && r == cursorRow {
			cursor = cursorCol
		}
		lines = append(lines, v.renderLine(f.Line(r), r, scrollCol, cols, cursor, sel))
	}
	return lines
}

func (v *FieldView) renderLine(line string, row, scrollCol, cols, cursor int, sel selection) string {
	runes := []rune(line)
	var b strings.Builder
	width := 0

	for col := scrollCol; ; col++ {
		var r rune = ' '
		if col < len(runes) {
			r = runes[col]
			// One cell per rune keeps columns in step with the cursor.
			if unicode.IsControl(r) {
				r = ' '
			}
		} else if col != cursor {
			break
		}

		w := runewidth.RuneWidth(r)
		if width+w > cols {
			break
		}
		width += w

		cell := string(r)
		switch {
		case col == cursor:
			b.WriteString(v.styles.Cursor.Render(cell))
		case sel.contains(col, row):
			b.WriteString(v.styles.Selection.Render(cell))
		default:
			b.WriteString(v.styles.Text.Render(cell))
		}

		if col >= len(runes) {
			break
		}
	}
	return b.String()
}

type selection struct {
	active             bool
	startCol, startRow int
	endCol, endRow     int
}

func selectionRange(f textfield.Field) selection {
	anchorCol, anchorRow, ok := f.SelectionAnchor()
	if !ok {
		return selection{}
	}
	col, row := f.Cursor()
	s := selection{active: true, startCol: anchorCol, startRow: anchorRow, endCol: col, endRow: row}
	if row < anchorRow || (row == anchorRow && col < anchorCol) {
		s.startCol, s.startRow, s.endCol, s.endRow = col, row, anchorCol, anchorRow
	}
	return s
}

func (s selection) contains(col, row int) bool {
	if !s.active || row < s.startRow || row > s.endRow {
		return false
	}
	if row == s.startRow && col < s.startCol {
		return false
	}
	if row == s.endRow && col > s.endCol {
		return false
	}
	return true
}

package core

import "github.com/artpar/yarc/internal/tui/textfield"

// Pair is a finished key/value row handed to collaborators.
type Pair struct {
	Key   string
	Value string
}

// Row is one editable key/value line of a row table.
type Row struct {
	Key   *textfield.Line
	Value *textfield.Line
}

// NewRow creates a row with the given initial text.
func NewRow(key, value string) *Row {
	return &Row{
		Key:   textfield.NewLine(key),
		Value: textfield.NewLine(value),
	}
}

// IsEmpty returns true when both sub-fields are empty.
func (r *Row) IsEmpty() bool {
	return r.Key.Value() == "" && r.Value.Value() == ""
}

// RowTable is an ordered list of rows that always holds at least one row.
type RowTable struct {
	rows []*Row
}

// NewRowTable creates a table from pairs, adding a blank row when pairs is
// empty.
func NewRowTable(pairs ...Pair) *RowTable {
	t := &RowTable{}
	for _, p := range pairs {
		t.rows = append(t.rows, NewRow(p.Key, p.Value))
	}
	if len(t.rows) == 0 {
		t.rows = append(t.rows, NewRow("", ""))
	}
	return t
}

// Len returns the number of rows.
func (t *RowTable) Len() int {
	return len(t.rows)
}

// Row returns row i clamped into range.
func (t *RowTable) Row(i int) *Row {
	if i < 0 {
		i = 0
	}
	if i >= len(t.rows) {
		i = len(t.rows) - 1
	}
	return t.rows[i]
}

// Last returns the index of the last row.
func (t *RowTable) Last() int {
	return len(t.rows) - 1
}

// AppendIfFilled appends a blank row unless the last row is already blank.
// It returns true when a row was added.
func (t *RowTable) AppendIfFilled() bool {
	if t.rows[t.Last()].IsEmpty() {
		return false
	}
	t.rows = append(t.rows, NewRow("", ""))
	return true
}

// Pairs returns the non-empty rows in order.
func (t *RowTable) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.rows))
	for _, r := range t.rows {
		if r.IsEmpty() {
			continue
		}
		pairs = append(pairs, Pair{Key: r.Key.Value(), Value: r.Value.Value()})
	}
	return pairs
}

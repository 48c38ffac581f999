// Package focus resolves which text field receives editing operations for
// the current panel and payload selection.
package focus

import (
	"github.com/artpar/yarc/internal/core"
	"github.com/artpar/yarc/internal/tui"
	"github.com/artpar/yarc/internal/tui/textfield"
)

// Panel is a logical region of the interface.
type Panel int

const (
	PanelMethod Panel = iota
	PanelAddress
	PanelPayload
	PanelResult
)

// String returns the panel title.
func (p Panel) String() string {
	switch p {
	case PanelMethod:
		return "Method"
	case PanelAddress:
		return "URL"
	case PanelPayload:
		return "Payload"
	case PanelResult:
		return "Output"
	default:
		return "Unknown"
	}
}

// InputType selects the payload table.
type InputType int

const (
	InputHeaders InputType = iota
	InputAuth
	InputBody
)

// InputTypes lists the payload tabs in display order.
var InputTypes = []InputType{InputHeaders, InputAuth, InputBody}

// String returns the tab title.
func (t InputType) String() string {
	switch t {
	case InputHeaders:
		return "Headers"
	case InputAuth:
		return "Auth"
	case InputBody:
		return "Body"
	default:
		return "Unknown"
	}
}

// InputField selects the key or value column of a row.
type InputField int

const (
	FieldKey InputField = iota
	FieldValue
)

// String returns the column name.
func (f InputField) String() string {
	if f == FieldValue {
		return "Value"
	}
	return "Key"
}

// neighbours maps each panel to the panel in each direction. A missing
// entry means the edge of the interface.
var neighbours = map[Panel]map[tui.NavDirection]Panel{
	PanelMethod: {
		tui.NavRight: PanelAddress,
		tui.NavDown:  PanelPayload,
	},
	PanelAddress: {
		tui.NavLeft: PanelMethod,
		tui.NavDown: PanelPayload,
	},
	PanelPayload: {
		tui.NavUp:   PanelAddress,
		tui.NavDown: PanelResult,
	},
	PanelResult: {
		tui.NavUp: PanelPayload,
	},
}

// Router tracks focus state over a request model.
type Router struct {
	req        *core.Request
	panel      Panel
	inputType  InputType
	inputField InputField
	row        int
}

// NewRouter creates a router focused on the method panel.
func NewRouter(req *core.Request) *Router {
	r := &Router{req: req}
	r.row = r.lastRow()
	return r
}

func (r *Router) Request() *core.Request {
	return r.req
}

// SetRequest swaps the model and resets payload focus.
func (r *Router) SetRequest(req *core.Request) {
	r.req = req
	r.inputField = FieldKey
	r.row = r.lastRow()
}

func (r *Router) Panel() Panel {
	return r.panel
}

func (r *Router) InputType() InputType {
	return r.inputType
}

func (r *Router) InputField() InputField {
	return r.inputField
}

func (r *Router) Row() int {
	return r.row
}

// SetPanel focuses p directly.
func (r *Router) SetPanel(p Panel) {
	r.panel = p
}

// Move focuses the neighbouring panel in dir. It returns false at the
// edge of the interface, leaving focus unchanged.
func (r *Router) Move(dir tui.NavDirection) bool {
	next, ok := neighbours[r.panel][dir]
	if !ok {
		return false
	}
	r.panel = next
	return true
}

// CurrentField returns the field that receives editing operations.
func (r *Router) CurrentField() textfield.Field {
	switch r.panel {
	case PanelAddress:
		return r.req.AddressField()
	case PanelPayload:
		return r.payloadField()
	case PanelResult:
		return r.req.Result()
	default:
		return textfield.Null{}
	}
}

func (r *Router) payloadField() textfield.Field {
	switch r.inputType {
	case InputAuth:
		auth := r.req.Auth()
		switch auth.Format {
		case core.AuthBasic:
			if r.inputField == FieldValue {
				return auth.Password
			}
			return auth.Username
		case core.AuthBearer:
			return auth.Token
		default:
			return textfield.Null{}
		}
	case InputBody:
		if r.req.BodyFormat() == core.BodyRaw {
			return r.req.RawBodyField()
		}
	}

	table := r.table()
	if table == nil {
		return textfield.Null{}
	}
	row := table.Row(r.row)
	if r.inputField == FieldValue {
		return row.Value
	}
	return row.Key
}

// table returns the row table behind the current input type, or nil when
// the input type is not tabular.
func (r *Router) table() *core.RowTable {
	switch r.inputType {
	case InputHeaders:
		return r.req.HeaderTable()
	case InputBody:
		if r.req.BodyFormat() == core.BodyRaw {
			return nil
		}
		return r.req.BodyTable()
	default:
		return nil
	}
}

func (r *Router) lastRow() int {
	if t := r.table(); t != nil {
		return t.Last()
	}
	return 0
}

// NextInputType selects the following payload tab.
func (r *Router) NextInputType() {
	r.setInputType(InputType((int(r.inputType) + 1) % len(InputTypes)))
}

// PrevInputType selects the preceding payload tab.
func (r *Router) PrevInputType() {
	r.setInputType(InputType((int(r.inputType) + len(InputTypes) - 1) % len(InputTypes)))
}

func (r *Router) setInputType(t InputType) {
	r.inputType = t
	r.inputField = FieldKey
	r.row = r.lastRow()
}

// NextInputField advances Key -> Value -> next row's Key. Leaving the
// last row grows the table only when that row holds text.
func (r *Router) NextInputField() {
	if r.inputType == InputAuth {
		r.toggleAuthField()
		return
	}
	table := r.table()
	if table == nil {
		return
	}

	if r.inputField == FieldKey {
		r.inputField = FieldValue
		return
	}

	r.inputField = FieldKey
	if r.row < table.Last() {
		r.row++
		return
	}
	if table.AppendIfFilled() {
		r.row = table.Last()
	}
}

// PrevInputField retreats Value -> Key -> previous row's Value, wrapping
// from the first row to the last.
func (r *Router) PrevInputField() {
	if r.inputType == InputAuth {
		r.toggleAuthField()
		return
	}
	table := r.table()
	if table == nil {
		return
	}

	if r.inputField == FieldValue {
		r.inputField = FieldKey
		return
	}

	r.inputField = FieldValue
	if r.row == 0 {
		r.row = table.Last()
	} else {
		r.row--
	}
}

func (r *Router) toggleAuthField() {
	if r.req.Auth().Format != core.AuthBasic {
		return
	}
	if r.inputField == FieldKey {
		r.inputField = FieldValue
	} else {
		r.inputField = FieldKey
	}
}

// NextInputFormat cycles the format of the current payload tab forward.
func (r *Router) NextInputFormat() {
	r.cycleFormat(true)
}

// PrevInputFormat cycles the format of the current payload tab backward.
func (r *Router) PrevInputFormat() {
	r.cycleFormat(false)
}

func (r *Router) cycleFormat(forward bool) {
	switch r.inputType {
	case InputAuth:
		auth := r.req.Auth()
		if forward {
			auth.Format = auth.Format.Next()
		} else {
			auth.Format = auth.Format.Prev()
		}
		r.inputField = FieldKey
	case InputBody:
		f := r.req.BodyFormat()
		if forward {
			f = f.Next()
		} else {
			f = f.Prev()
		}
		r.req.SetBodyFormat(f)
		r.inputField = FieldKey
		r.row = r.lastRow()
	}
}

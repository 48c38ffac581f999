package core

import (
	"strings"

	"github.com/artpar/yarc/internal/tui/textfield"
)

// BodyFormat selects how the body is encoded.
type BodyFormat int

const (
	BodyForm BodyFormat = iota
	BodyJSON
	BodyRaw
)

var bodyFormatNames = []string{"Form", "JSON", "Raw"}

// String returns the display name.
func (f BodyFormat) String() string {
	if f < 0 || int(f) >= len(bodyFormatNames) {
		return "Unknown"
	}
	return bodyFormatNames[f]
}

// Next returns the following format, wrapping.
func (f BodyFormat) Next() BodyFormat {
	return BodyFormat((int(f) + 1) % len(bodyFormatNames))
}

// Prev returns the preceding format, wrapping.
func (f BodyFormat) Prev() BodyFormat {
	return BodyFormat((int(f) + len(bodyFormatNames) - 1) % len(bodyFormatNames))
}

// ParseBodyFormat parses a format name case-insensitively; unknown names
// map to BodyForm.
func ParseBodyFormat(s string) BodyFormat {
	switch normalize(s) {
	case "json":
		return BodyJSON
	case "raw":
		return BodyRaw
	default:
		return BodyForm
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Request is the editable request model. It owns every text field of the
// interface and is mutated only from the update loop.
type Request struct {
	path       string
	method     int
	address    *textfield.Line
	auth       *Auth
	headers    *RowTable
	body       *RowTable
	bodyFormat BodyFormat
	rawBody    *textfield.Buffer
	result     *textfield.ReadOnly
}

// Spec carries the initial text of a request, as supplied by persistence.
type Spec struct {
	Method     string
	URL        string
	AuthFormat AuthFormat
	Username   string
	Password   string
	Token      string
	Headers    []Pair
	BodyFormat BodyFormat
	BodyFields []Pair
	RawBody    string
}

// NewRequest creates an empty request bound to path.
func NewRequest(path string) *Request {
	return NewRequestFromSpec(path, Spec{})
}

// NewRequestFromSpec creates a request populated from spec.
func NewRequestFromSpec(path string, spec Spec) *Request {
	return &Request{
		path:       path,
		method:     MethodIndex(strings.ToUpper(spec.Method)),
		address:    textfield.NewLine(spec.URL),
		auth:       NewAuth(spec.AuthFormat, spec.Username, spec.Password, spec.Token),
		headers:    NewRowTable(spec.Headers...),
		body:       NewRowTable(spec.BodyFields...),
		bodyFormat: spec.BodyFormat,
		rawBody:    textfield.NewBuffer(spec.RawBody),
		result:     textfield.NewReadOnly(""),
	}
}

// Spec returns the current text of every field, for persistence.
func (r *Request) Spec() Spec {
	return Spec{
		Method:     r.Method(),
		URL:        r.Address(),
		AuthFormat: r.auth.Format,
		Username:   r.auth.Username.Value(),
		Password:   r.auth.Password.Value(),
		Token:      r.auth.Token.Value(),
		Headers:    r.headers.Pairs(),
		BodyFormat: r.bodyFormat,
		BodyFields: r.body.Pairs(),
		RawBody:    r.RawBody(),
	}
}

func (r *Request) Path() string {
	return r.path
}

func (r *Request) Method() string {
	return Methods[r.method]
}

func (r *Request) MethodIndex() int {
	return r.method
}

// NextMethod selects the following method, wrapping.
func (r *Request) NextMethod() {
	r.method = (r.method + 1) % len(Methods)
}

// PrevMethod selects the preceding method, wrapping.
func (r *Request) PrevMethod() {
	r.method = (r.method + len(Methods) - 1) % len(Methods)
}

func (r *Request) Address() string {
	return r.address.Value()
}

func (r *Request) AddressField() *textfield.Line {
	return r.address
}

func (r *Request) Auth() *Auth {
	return r.auth
}

func (r *Request) HeaderTable() *RowTable {
	return r.headers
}

func (r *Request) BodyTable() *RowTable {
	return r.body
}

// Headers returns the non-empty header rows.
func (r *Request) Headers() []Pair {
	return r.headers.Pairs()
}

// BodyFields returns the non-empty body rows.
func (r *Request) BodyFields() []Pair {
	return r.body.Pairs()
}

func (r *Request) BodyFormat() BodyFormat {
	return r.bodyFormat
}

func (r *Request) SetBodyFormat(f BodyFormat) {
	r.bodyFormat = f
}

func (r *Request) RawBody() string {
	return r.rawBody.Value()
}

func (r *Request) RawBodyField() *textfield.Buffer {
	return r.rawBody
}

func (r *Request) Result() *textfield.ReadOnly {
	return r.result
}

// SetResult replaces the output text. Cursor and scroll reset.
func (r *Request) SetResult(text string) {
	r.result = textfield.NewReadOnly(text)
}

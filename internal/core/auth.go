package core

import "github.com/artpar/yarc/internal/tui/textfield"

// AuthFormat selects how credentials are attached to a request.
type AuthFormat int

const (
	AuthNone AuthFormat = iota
	AuthBasic
	AuthBearer
)

var authFormatNames = []string{"None", "Basic", "Bearer"}

// String returns the display name.
func (f AuthFormat) String() string {
	if f < 0 || int(f) >= len(authFormatNames) {
		return "Unknown"
	}
	return authFormatNames[f]
}

// Next returns the following format, wrapping.
func (f AuthFormat) Next() AuthFormat {
	return AuthFormat((int(f) + 1) % len(authFormatNames))
}

// Prev returns the preceding format, wrapping.
func (f AuthFormat) Prev() AuthFormat {
	return AuthFormat((int(f) + len(authFormatNames) - 1) % len(authFormatNames))
}

// ParseAuthFormat parses a format name case-insensitively; unknown names
// map to AuthNone.
func ParseAuthFormat(s string) AuthFormat {
	switch normalize(s) {
	case "basic":
		return AuthBasic
	case "bearer":
		return AuthBearer
	default:
		return AuthNone
	}
}

// Auth holds the credential fields. All three fields exist regardless of
// the active format so switching formats never loses text.
type Auth struct {
	Format   AuthFormat
	Username *textfield.Line
	Password *textfield.Line
	Token    *textfield.Line
}

// NewAuth creates auth fields with initial text.
func NewAuth(format AuthFormat, username, password, token string) *Auth {
	return &Auth{
		Format:   format,
		Username: textfield.NewLine(username),
		Password: textfield.NewLine(password),
		Token:    textfield.NewLine(token),
	}
}

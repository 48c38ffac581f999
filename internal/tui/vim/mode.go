package vim

// Mode represents the current vim editing mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	default:
		return "UNKNOWN"
	}
}

// ModeManager holds the mode and the pending count prefix.
type ModeManager struct {
	current  Mode
	count    int
	hasCount bool
}

// NewModeManager creates a new mode manager starting in normal mode.
func NewModeManager() *ModeManager {
	return &ModeManager{
		current: ModeNormal,
		count:   1,
	}
}

// Current returns the current mode.
func (m *ModeManager) Current() Mode {
	return m.current
}

// SetMode changes the current mode. Any pending count is dropped.
func (m *ModeManager) SetMode(mode Mode) {
	m.current = mode
	m.ResetCount()
}

// Count returns the current count (default 1).
func (m *ModeManager) Count() int {
	return m.count
}

// AppendCount adds a digit to the count.
func (m *ModeManager) AppendCount(digit int) {
	if !m.hasCount {
		m.count = digit
		m.hasCount = true
	} else {
		m.count = m.count*10 + digit
	}
}

// ResetCount resets the count to default (1).
func (m *ModeManager) ResetCount() {
	m.count = 1
	m.hasCount = false
}

// HasCount returns true if a count was explicitly set.
func (m *ModeManager) HasCount() bool {
	return m.hasCount
}

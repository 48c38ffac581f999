package vim

import (
	"strings"

	"github.com/artpar/yarc/internal/tui/textfield"
)

// SequenceStatus represents the state of a key sequence.
type SequenceStatus int

const (
	SequenceNone SequenceStatus = iota
	SequencePending
	SequenceComplete
	SequenceInvalid
)

// SequenceResult holds the result of handling a key in a sequence.
type SequenceResult struct {
	Status  SequenceStatus
	Command Command
}

// KeySequenceHandler handles multi-key sequences like "gg".
type KeySequenceHandler struct {
	sequences map[string]Command
	buffer    string
}

// NewKeySequenceHandler creates a new sequence handler.
func NewKeySequenceHandler() *KeySequenceHandler {
	return &KeySequenceHandler{
		sequences: make(map[string]Command),
	}
}

// DefaultSequences returns the built-in sequences.
func DefaultSequences() *KeySequenceHandler {
	h := NewKeySequenceHandler()
	h.Register("gg", move(textfield.Head))
	return h
}

// Register adds a sequence.
func (h *KeySequenceHandler) Register(sequence string, c Command) {
	h.sequences[sequence] = c
}

// Starts returns true if key begins a registered sequence.
func (h *KeySequenceHandler) Starts(key string) bool {
	for seq := range h.sequences {
		if strings.HasPrefix(seq, key) {
			return true
		}
	}
	return false
}

// Handle processes a key and returns the sequence status.
func (h *KeySequenceHandler) Handle(key string) SequenceResult {
	h.buffer += key

	if c, ok := h.sequences[h.buffer]; ok {
		hasLonger := false
		for seq := range h.sequences {
			if len(seq) > len(h.buffer) && strings.HasPrefix(seq, h.buffer) {
				hasLonger = true
				break
			}
		}
		if !hasLonger {
			h.buffer = ""
			return SequenceResult{Status: SequenceComplete, Command: c}
		}
		return SequenceResult{Status: SequencePending}
	}

	if h.Starts(h.buffer) {
		return SequenceResult{Status: SequencePending}
	}

	h.buffer = ""
	return SequenceResult{Status: SequenceInvalid}
}

// Reset clears the sequence buffer.
func (h *KeySequenceHandler) Reset() {
	h.buffer = ""
}

// Buffer returns the current sequence buffer.
func (h *KeySequenceHandler) Buffer() string {
	return h.buffer
}

// Pending returns true while a sequence is partially typed.
func (h *KeySequenceHandler) Pending() bool {
	return h.buffer != ""
}

package vim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artpar/yarc/internal/tui/textfield"
)

func TestKeySequenceHandler(t *testing.T) {
	t.Run("completes gg", func(t *testing.T) {
		h := DefaultSequences()

		result := h.Handle("g")
		assert.Equal(t, SequencePending, result.Status)
		assert.True(t, h.Pending())
		assert.Equal(t, "g", h.Buffer())

		result = h.Handle("g")
		assert.Equal(t, SequenceComplete, result.Status)
		assert.Equal(t, move(textfield.Head), result.Command)
		assert.False(t, h.Pending())
	})

	t.Run("invalid key clears buffer", func(t *testing.T) {
		h := DefaultSequences()
		h.Handle("g")

		result := h.Handle("x")
		assert.Equal(t, SequenceInvalid, result.Status)
		assert.Empty(t, h.Buffer())
	})

	t.Run("waits for longer sequence", func(t *testing.T) {
		h := NewKeySequenceHandler()
		h.Register("z", cmd(CmdSave))
		h.Register("zz", cmd(CmdQuit))

		assert.Equal(t, SequencePending, h.Handle("z").Status)
		result := h.Handle("z")
		assert.Equal(t, SequenceComplete, result.Status)
		assert.Equal(t, CmdQuit, result.Command.Kind)
	})

	t.Run("starts", func(t *testing.T) {
		h := DefaultSequences()
		assert.True(t, h.Starts("g"))
		assert.False(t, h.Starts("x"))
	})

	t.Run("reset", func(t *testing.T) {
		h := DefaultSequences()
		h.Handle("g")
		h.Reset()
		assert.False(t, h.Pending())
	})
}

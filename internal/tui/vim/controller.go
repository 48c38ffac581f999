package vim

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/artpar/yarc/internal/tui"
	"github.com/artpar/yarc/internal/tui/focus"
	"github.com/artpar/yarc/internal/tui/textfield"
)

// ErrNothingCopied is returned by a visual-mode copy that sent no text,
// either because there was no selection or because no sink is set.
var ErrNothingCopied = errors.New("nothing copied")

// CopySink receives text committed by a visual-mode copy.
type CopySink interface {
	Copy(text string) error
}

// PaneSwitcher moves focus outside the interface when a panel move runs
// off its edge.
type PaneSwitcher interface {
	SelectPane(dir tui.NavDirection) error
}

// Controller is the modal editing state machine. It classifies key
// presses, applies editing commands to the routed field and tracks mode
// transitions. Quit, save and submit are returned to the caller.
type Controller struct {
	modes     *ModeManager
	keys      *KeyMap
	sequences *KeySequenceHandler
	router    *focus.Router
	copySink  CopySink
	panes     PaneSwitcher
}

// Option configures a Controller.
type Option func(*Controller)

// WithKeyMap replaces the default key map.
func WithKeyMap(km *KeyMap) Option {
	return func(c *Controller) {
		c.keys = km
	}
}

// WithCopySink sets the destination of visual-mode copies.
func WithCopySink(sink CopySink) Option {
	return func(c *Controller) {
		c.copySink = sink
	}
}

// WithPaneSwitcher sets the collaborator used at the interface edge.
func WithPaneSwitcher(p PaneSwitcher) Option {
	return func(c *Controller) {
		c.panes = p
	}
}

// NewController creates a controller in normal mode.
func NewController(router *focus.Router, opts ...Option) *Controller {
	c := &Controller{
		modes:     NewModeManager(),
		keys:      DefaultKeyMap(),
		sequences: DefaultSequences(),
		router:    router,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Mode() Mode {
	return c.modes.Current()
}

func (c *Controller) Modes() *ModeManager {
	return c.modes
}

func (c *Controller) KeyMap() *KeyMap {
	return c.keys
}

func (c *Controller) Router() *focus.Router {
	return c.router
}

// Pending returns the typed count and sequence prefix, for display.
func (c *Controller) Pending() string {
	s := c.sequences.Buffer()
	if c.modes.HasCount() {
		s = fmt.Sprintf("%d%s", c.modes.Count(), s)
	}
	return s
}

// Handle classifies msg and executes the resulting command. The command
// is returned so the caller can act on quit, save and submit. The error
// comes from a collaborator and is meant for display only.
func (c *Controller) Handle(msg tea.KeyMsg) (Command, error) {
	command := c.classify(msg)
	return command, c.Execute(command)
}

func (c *Controller) classify(msg tea.KeyMsg) Command {
	mode := c.modes.Current()
	if mode == ModeInsert {
		return c.keys.Classify(mode, c.router.Panel(), msg)
	}

	if command, ok := c.prefix(msg); ok {
		return command
	}

	command := c.keys.Classify(mode, c.router.Panel(), msg)
	if command.Kind == CmdMove {
		command.Count = c.modes.Count()
	}
	c.modes.ResetCount()
	return command
}

// prefix consumes count digits and multi-key sequences.
func (c *Controller) prefix(msg tea.KeyMsg) (Command, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		c.sequences.Reset()
		return Command{}, false
	}
	k := string(msg.Runes)

	if c.sequences.Pending() || c.sequences.Starts(k) {
		res := c.sequences.Handle(k)
		switch res.Status {
		case SequencePending:
			return cmd(CmdNone), true
		case SequenceComplete:
			command := res.Command
			command.Count = c.modes.Count()
			c.modes.ResetCount()
			return command, true
		}
		// The key did not continue the sequence: drop the prefix and
		// handle the key on its own.
		c.modes.ResetCount()
		if c.sequences.Starts(k) {
			c.sequences.Handle(k)
			return cmd(CmdNone), true
		}
	}

	r := msg.Runes[0]
	if (r >= '1' && r <= '9') || (r == '0' && c.modes.HasCount()) {
		c.modes.AppendCount(int(r - '0'))
		return cmd(CmdNone), true
	}
	return Command{}, false
}

// Execute applies command to the mode state, the router and the current
// field.
func (c *Controller) Execute(command Command) error {
	field := c.router.CurrentField()

	switch command.Kind {
	case CmdAppend:
		field.MoveCursor(textfield.NextChar)
		c.modes.SetMode(ModeInsert)
	case CmdInsert:
		c.modes.SetMode(ModeInsert)
	case CmdLeaveInsert:
		field.MoveCursor(textfield.PrevChar)
		c.modes.SetMode(ModeNormal)
	case CmdVisual:
		c.modes.SetMode(ModeVisual)
		field.StartSelection()
	case CmdLeaveVisual:
		field.CancelSelection()
		c.modes.SetMode(ModeNormal)
	case CmdCopy:
		err := ErrNothingCopied
		if text, ok := field.Selection(); ok && c.copySink != nil {
			if err = c.copySink.Copy(text); err != nil {
				err = fmt.Errorf("copy failed: %w", err)
			}
		}
		field.CancelSelection()
		c.modes.SetMode(ModeNormal)
		return err

	case CmdMove:
		for i := 0; i < max(command.Count, 1); i++ {
			field.MoveCursor(command.Move)
		}
	case CmdInsertText:
		for _, r := range command.Runes {
			field.InsertChar(r)
		}
	case CmdInsertNewline:
		field.InsertNewline()
	case CmdDeleteChar:
		field.DeleteChar()
	case CmdDeleteNextChar:
		field.DeleteNextChar()

	case CmdPanel:
		if !c.router.Move(command.Direction) && c.panes != nil {
			if err := c.panes.SelectPane(command.Direction); err != nil {
				return fmt.Errorf("select pane %s: %w", command.Direction, err)
			}
		}
	case CmdNextMethod:
		c.router.Request().NextMethod()
	case CmdPrevMethod:
		c.router.Request().PrevMethod()
	case CmdNextInputType:
		c.router.NextInputType()
	case CmdPrevInputType:
		c.router.PrevInputType()
	case CmdNextInputField:
		c.router.NextInputField()
	case CmdPrevInputField:
		c.router.PrevInputField()
	case CmdNextInputFormat:
		c.router.NextInputFormat()
	case CmdPrevInputFormat:
		c.router.PrevInputFormat()
	}
	return nil
}

package vim

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/artpar/yarc/internal/tui"
	"github.com/artpar/yarc/internal/tui/focus"
	"github.com/artpar/yarc/internal/tui/textfield"
)

// motion pairs a binding with the cursor move it triggers.
type motion struct {
	binding key.Binding
	move    textfield.CursorMove
}

// KeyMap holds every binding used to classify key presses.
type KeyMap struct {
	Quit key.Binding
	Save key.Binding

	Append     key.Binding
	Insert     key.Binding
	Visual     key.Binding
	Leave      key.Binding
	Copy       key.Binding
	Submit     key.Binding
	PanelLeft  key.Binding
	PanelDown  key.Binding
	PanelUp    key.Binding
	PanelRight key.Binding

	NextMethod      key.Binding
	PrevMethod      key.Binding
	NextInputType   key.Binding
	PrevInputType   key.Binding
	NextInputField  key.Binding
	PrevInputField  key.Binding
	NextInputFormat key.Binding
	PrevInputFormat key.Binding

	NextChar key.Binding
	PrevChar key.Binding
	NextLine key.Binding
	PrevLine key.Binding
	NextWord key.Binding
	PrevWord key.Binding
	LineHead key.Binding
	LineEnd  key.Binding
	End      key.Binding

	InsertNewline  key.Binding
	DeleteChar     key.Binding
	DeleteNextChar key.Binding
	InsertTab      key.Binding
	InsertLeft     key.Binding
	InsertRight    key.Binding
	InsertUp       key.Binding
	InsertDown     key.Binding
	InsertHome     key.Binding
	InsertEnd      key.Binding
}

// DefaultKeyMap returns a key map with default vim-like bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save request file")),

		Append:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
		Insert:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Visual:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "visual")),
		Leave:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy selection")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send request")),
		PanelLeft:  key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "panel left")),
		PanelDown:  key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "panel down")),
		PanelUp:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "panel up")),
		PanelRight: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "panel right")),

		NextMethod:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next method")),
		PrevMethod:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "previous method")),
		NextInputType:   key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "next tab")),
		PrevInputType:   key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "previous tab")),
		NextInputField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevInputField:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		NextInputFormat: key.NewBinding(key.WithKeys("ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "next format")),
		PrevInputFormat: key.NewBinding(key.WithKeys("ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "previous format")),

		NextChar: key.NewBinding(key.WithKeys("l", "right")),
		PrevChar: key.NewBinding(key.WithKeys("h", "left")),
		NextLine: key.NewBinding(key.WithKeys("j", "down")),
		PrevLine: key.NewBinding(key.WithKeys("k", "up")),
		NextWord: key.NewBinding(key.WithKeys("w")),
		PrevWord: key.NewBinding(key.WithKeys("b")),
		LineHead: key.NewBinding(key.WithKeys("^", "0", "home")),
		LineEnd:  key.NewBinding(key.WithKeys("$", "end")),
		End:      key.NewBinding(key.WithKeys("G")),

		InsertNewline:  key.NewBinding(key.WithKeys("enter")),
		DeleteChar:     key.NewBinding(key.WithKeys("backspace")),
		DeleteNextChar: key.NewBinding(key.WithKeys("delete")),
		InsertTab:      key.NewBinding(key.WithKeys("tab")),
		InsertLeft:     key.NewBinding(key.WithKeys("left")),
		InsertRight:    key.NewBinding(key.WithKeys("right")),
		InsertUp:       key.NewBinding(key.WithKeys("up")),
		InsertDown:     key.NewBinding(key.WithKeys("down")),
		InsertHome:     key.NewBinding(key.WithKeys("home")),
		InsertEnd:      key.NewBinding(key.WithKeys("end")),
	}
}

func (km *KeyMap) motions() []motion {
	return []motion{
		{km.NextChar, textfield.NextChar},
		{km.PrevChar, textfield.PrevChar},
		{km.NextLine, textfield.NextLine},
		{km.PrevLine, textfield.PrevLine},
		{km.NextWord, textfield.NextWord},
		{km.PrevWord, textfield.PrevWord},
		{km.LineHead, textfield.LineHead},
		{km.LineEnd, textfield.LineEnd},
		{km.End, textfield.End},
	}
}

func (km *KeyMap) insertMotions() []motion {
	return []motion{
		{km.InsertLeft, textfield.PrevChar},
		{km.InsertRight, textfield.NextChar},
		{km.InsertUp, textfield.PrevLine},
		{km.InsertDown, textfield.NextLine},
		{km.InsertHome, textfield.LineHead},
		{km.InsertEnd, textfield.LineEnd},
	}
}

// Classify maps a key press to a command for the given mode and panel.
// The quit binding is checked before any mode-specific handling.
func (km *KeyMap) Classify(mode Mode, p focus.Panel, msg tea.KeyMsg) Command {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 0 {
		return cmd(CmdNone)
	}
	if key.Matches(msg, km.Quit) {
		return cmd(CmdQuit)
	}

	switch mode {
	case ModeInsert:
		return km.classifyInsert(msg)
	case ModeVisual:
		return km.classifyVisual(msg)
	default:
		return km.classifyNormal(p, msg)
	}
}

func (km *KeyMap) classifyNormal(p focus.Panel, msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, km.PanelLeft):
		return panel(tui.NavLeft)
	case key.Matches(msg, km.PanelDown):
		return panel(tui.NavDown)
	case key.Matches(msg, km.PanelUp):
		return panel(tui.NavUp)
	case key.Matches(msg, km.PanelRight):
		return panel(tui.NavRight)
	case key.Matches(msg, km.Append):
		return cmd(CmdAppend)
	case key.Matches(msg, km.Insert):
		return cmd(CmdInsert)
	case key.Matches(msg, km.Visual):
		return cmd(CmdVisual)
	case key.Matches(msg, km.Save):
		return cmd(CmdSave)
	}

	if c, ok := km.classifyPanel(p, msg); ok {
		return c
	}

	if key.Matches(msg, km.Submit) {
		return cmd(CmdSubmit)
	}
	return km.classifyMotion(msg, km.motions())
}

// classifyPanel handles the keys that only mean something on one panel.
func (km *KeyMap) classifyPanel(p focus.Panel, msg tea.KeyMsg) (Command, bool) {
	switch p {
	case focus.PanelMethod:
		switch {
		case key.Matches(msg, km.NextMethod):
			return cmd(CmdNextMethod), true
		case key.Matches(msg, km.PrevMethod):
			return cmd(CmdPrevMethod), true
		}
	case focus.PanelPayload:
		switch {
		case key.Matches(msg, km.NextInputType):
			return cmd(CmdNextInputType), true
		case key.Matches(msg, km.PrevInputType):
			return cmd(CmdPrevInputType), true
		case key.Matches(msg, km.NextInputFormat):
			return cmd(CmdNextInputFormat), true
		case key.Matches(msg, km.PrevInputFormat):
			return cmd(CmdPrevInputFormat), true
		case key.Matches(msg, km.NextInputField):
			return cmd(CmdNextInputField), true
		case key.Matches(msg, km.PrevInputField):
			return cmd(CmdPrevInputField), true
		}
	}
	return Command{}, false
}

func (km *KeyMap) classifyVisual(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, km.Leave):
		return cmd(CmdLeaveVisual)
	case key.Matches(msg, km.Copy):
		return cmd(CmdCopy)
	}
	return km.classifyMotion(msg, km.motions())
}

func (km *KeyMap) classifyInsert(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, km.Leave):
		return cmd(CmdLeaveInsert)
	case key.Matches(msg, km.InsertNewline):
		return cmd(CmdInsertNewline)
	case key.Matches(msg, km.DeleteChar):
		return cmd(CmdDeleteChar)
	case key.Matches(msg, km.DeleteNextChar):
		return cmd(CmdDeleteNextChar)
	case key.Matches(msg, km.InsertTab):
		return insertText('\t')
	}

	if c := km.classifyMotion(msg, km.insertMotions()); c.Kind != CmdNone {
		return c
	}

	switch msg.Type {
	case tea.KeySpace:
		return insertText(' ')
	case tea.KeyRunes:
		if msg.Alt {
			return cmd(CmdNone)
		}
		return insertText(printable(msg.Runes)...)
	}
	return cmd(CmdNone)
}

func (km *KeyMap) classifyMotion(msg tea.KeyMsg, motions []motion) Command {
	for _, m := range motions {
		if key.Matches(msg, m.binding) {
			return move(m.move)
		}
	}
	return cmd(CmdNone)
}

// printable drops control runes that arrive inside pasted text.
func printable(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r == '\t' || unicode.IsPrint(r) {
			out = append(out, r)
		}
	}
	return out
}

// Help lists the bindings that carry help text, for the help line.
func (km *KeyMap) Help() []key.Binding {
	return []key.Binding{
		km.Insert, km.Append, km.Visual, km.Copy, km.Submit, km.Save,
		km.PanelLeft, km.PanelDown, km.PanelUp, km.PanelRight,
		km.NextInputType, km.NextInputField, km.NextInputFormat, km.Quit,
	}
}

package vim

import (
	"github.com/artpar/yarc/internal/tui"
	"github.com/artpar/yarc/internal/tui/textfield"
)

// CommandKind identifies what a key press asks for.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdSave
	CmdSubmit

	CmdAppend
	CmdInsert
	CmdLeaveInsert
	CmdVisual
	CmdLeaveVisual
	CmdCopy

	CmdMove
	CmdInsertText
	CmdInsertNewline
	CmdDeleteChar
	CmdDeleteNextChar

	CmdPanel
	CmdNextMethod
	CmdPrevMethod
	CmdNextInputType
	CmdPrevInputType
	CmdNextInputField
	CmdPrevInputField
	CmdNextInputFormat
	CmdPrevInputFormat
)

var commandNames = map[CommandKind]string{
	CmdNone:            "none",
	CmdQuit:            "quit",
	CmdSave:            "save",
	CmdSubmit:          "submit",
	CmdAppend:          "append",
	CmdInsert:          "insert",
	CmdLeaveInsert:     "leave-insert",
	CmdVisual:          "visual",
	CmdLeaveVisual:     "leave-visual",
	CmdCopy:            "copy",
	CmdMove:            "move",
	CmdInsertText:      "insert-text",
	CmdInsertNewline:   "insert-newline",
	CmdDeleteChar:      "delete-char",
	CmdDeleteNextChar:  "delete-next-char",
	CmdPanel:           "panel",
	CmdNextMethod:      "next-method",
	CmdPrevMethod:      "prev-method",
	CmdNextInputType:   "next-input-type",
	CmdPrevInputType:   "prev-input-type",
	CmdNextInputField:  "next-input-field",
	CmdPrevInputField:  "prev-input-field",
	CmdNextInputFormat: "next-input-format",
	CmdPrevInputFormat: "prev-input-format",
}

// String returns the command name.
func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is a classified key press.
type Command struct {
	Kind      CommandKind
	Move      textfield.CursorMove
	Direction tui.NavDirection
	Runes     []rune
	Count     int
}

func cmd(kind CommandKind) Command {
	return Command{Kind: kind}
}

func move(m textfield.CursorMove) Command {
	return Command{Kind: CmdMove, Move: m}
}

func panel(dir tui.NavDirection) Command {
	return Command{Kind: CmdPanel, Direction: dir}
}

func insertText(runes ...rune) Command {
	return Command{Kind: CmdInsertText, Runes: runes}
}

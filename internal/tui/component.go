package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Component is the interface for top-level TUI views.
type Component interface {
	// Init initializes the component.
	Init() tea.Cmd

	// Update handles messages and returns the updated component.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component.
	View() string

	// Title returns the component title.
	Title() string

	// SetSize sets the component dimensions.
	SetSize(width, height int)

	// Width returns the component width.
	Width() int

	// Height returns the component height.
	Height() int
}

// NavDirection represents a navigation direction.
type NavDirection int

const (
	NavUp NavDirection = iota
	NavDown
	NavLeft
	NavRight
)

// String returns the direction name.
func (d NavDirection) String() string {
	switch d {
	case NavUp:
		return "up"
	case NavDown:
		return "down"
	case NavLeft:
		return "left"
	case NavRight:
		return "right"
	default:
		return "unknown"
	}
}

// Panel padding constants for comfortable spacing
const (
	PanelPaddingV = 0 // Vertical padding (lines)
	PanelPaddingH = 1 // Horizontal padding (chars)
	MethodWidth   = 13
)

// Shared colours.
var (
	ActiveBorderColor   = lipgloss.Color("62")
	InactiveBorderColor = lipgloss.Color("240")
)

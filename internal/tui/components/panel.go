package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/artpar/yarc/internal/tui"
)

// Panel draws a bordered box of an exact outer size around a list of
// lines. Lines beyond the inner height are dropped.
type Panel struct {
	Title   string
	Width   int
	Height  int
	Focused bool
}

// Inner returns the content area size inside the border and padding.
func (p Panel) Inner() (cols, rows int) {
	return max(p.Width-2-2*tui.PanelPaddingH, 0), max(p.Height-2-2*tui.PanelPaddingV, 0)
}

// Render draws lines inside the panel border.
func (p Panel) Render(lines []string) string {
	if p.Width < 2 || p.Height < 2 {
		return ""
	}
	_, rows := p.Inner()
	if len(lines) > rows {
		lines = lines[:rows]
	}

	border := tui.InactiveBorderColor
	if p.Focused {
		border = tui.ActiveBorderColor
	}

	box := lipgloss.NewStyle().
		Width(p.Width-2).
		Height(p.Height-2).
		Padding(tui.PanelPaddingV, tui.PanelPaddingH).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))

	if p.Title == "" {
		return box
	}
	return p.titled(box, border)
}

// titled writes the title into the top border line.
func (p Panel) titled(box string, border lipgloss.Color) string {
	_, rest, _ := strings.Cut(box, "\n")
	title := lipgloss.NewStyle().Foreground(border).Bold(p.Focused).Render(" " + p.Title + " ")
	if lipgloss.Width(title)+3 > p.Width {
		return box
	}

	edge := lipgloss.NewStyle().Foreground(border)
	fill := strings.Repeat("─", p.Width-3-lipgloss.Width(title))
	top := edge.Render("╭─") + title + edge.Render(fill+"╮")
	return top + "\n" + rest
}

// MethodStyle returns the badge style for an HTTP method.
func MethodStyle(method string) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch strings.ToUpper(method) {
	case "GET":
		return style.Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255"))
	case "POST":
		return style.Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0"))
	case "PUT":
		return style.Background(lipgloss.Color("33")).Foreground(lipgloss.Color("255"))
	case "PATCH":
		return style.Background(lipgloss.Color("141")).Foreground(lipgloss.Color("255"))
	case "DELETE":
		return style.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255"))
	default:
		return style.Background(lipgloss.Color("240"))
	}
}

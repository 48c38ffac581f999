package views

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/artpar/yarc/internal/app"
	"github.com/artpar/yarc/internal/core"
	"github.com/artpar/yarc/internal/tui"
	"github.com/artpar/yarc/internal/tui/components"
	"github.com/artpar/yarc/internal/tui/focus"
	"github.com/artpar/yarc/internal/tui/textfield"
	"github.com/artpar/yarc/internal/tui/vim"
)

const (
	addressHeight   = 3
	statusBarHeight = 1
	authLabelWidth  = 10
	cellSeparator   = " │ "
)

// ResponseReceivedMsg carries a completed submission.
type ResponseReceivedMsg struct {
	Response *core.Response
}

// RequestErrorMsg carries a failed submission.
type RequestErrorMsg struct {
	Error error
}

// clearNotificationMsg is sent to clear the notification.
type clearNotificationMsg struct{}

// ClipboardSink copies visual selections to the system clipboard.
type ClipboardSink struct{}

// Copy writes text to the clipboard.
func (ClipboardSink) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// MainView is the request composer: method and address on top, the payload
// editor in the middle and the result at the bottom.
type MainView struct {
	width        int
	height       int
	app          *app.App
	router       *focus.Router
	controller   *vim.Controller
	fields       *components.FieldView
	tableOffset  int
	sending      bool
	notification string
}

// NewMainView creates a view editing req. Controller options supply the
// copy sink and pane switcher.
func NewMainView(application *app.App, req *core.Request, opts ...vim.Option) *MainView {
	router := focus.NewRouter(req)
	return &MainView{
		app:        application,
		router:     router,
		controller: vim.NewController(router, opts...),
		fields:     components.NewFieldView(components.DefaultFieldStyles()),
	}
}

// Init initializes the view.
func (v *MainView) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (v *MainView) Update(msg tea.Msg) (tui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case ResponseReceivedMsg:
		v.sending = false
		v.router.Request().SetResult(components.FormatResponse(msg.Response))
		log.Printf("response: %s in %s", msg.Response.Status, msg.Response.Duration)
		return v, nil

	case RequestErrorMsg:
		v.sending = false
		v.router.Request().SetResult("Error: " + msg.Error.Error())
		log.Printf("request failed: %v", msg.Error)
		return v, nil

	case clearNotificationMsg:
		v.notification = ""
		return v, nil
	}

	return v, nil
}

func (v *MainView) handleKeyMsg(msg tea.KeyMsg) (tui.Component, tea.Cmd) {
	command, err := v.controller.Handle(msg)
	if err != nil {
		log.Printf("%s: %v", command.Kind, err)
		return v, v.notify("✗ " + err.Error())
	}

	var cmd tea.Cmd
	switch command.Kind {
	case vim.CmdQuit:
		if err := v.save(); err != nil {
			log.Printf("save on quit: %v", err)
		}
		return v, tea.Quit

	case vim.CmdSave:
		if err := v.save(); err != nil {
			log.Printf("save: %v", err)
			cmd = v.notify("✗ Save failed")
		} else {
			cmd = v.notify("✓ Saved " + v.router.Request().Path())
		}

	case vim.CmdSubmit:
		cmd = v.submit()

	case vim.CmdCopy:
		cmd = v.notify("✓ Copied")
	}

	v.ensureVisible()
	return v, cmd
}

func (v *MainView) save() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return v.app.Save(ctx, v.router.Request())
}

// submit sends a snapshot of the request so the model is never read
// outside the update loop.
func (v *MainView) submit() tea.Cmd {
	if v.sending {
		return nil
	}
	v.sending = true

	req := v.router.Request()
	snapshot := core.NewRequestFromSpec(req.Path(), req.Spec())
	application := v.app
	log.Printf("submit: %s %s", snapshot.Method(), snapshot.Address())

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), application.Config().Timeout)
		defer cancel()

		resp, err := application.Submit(ctx, snapshot)
		if err != nil {
			return RequestErrorMsg{Error: err}
		}
		return ResponseReceivedMsg{Response: resp}
	}
}

func (v *MainView) notify(text string) tea.Cmd {
	v.notification = text
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

// ensureVisible scrolls the focused field so its cursor lies inside the
// visible area.
func (v *MainView) ensureVisible() {
	if v.width == 0 || v.height == 0 {
		return
	}
	if v.router.Panel() == focus.PanelPayload && v.isTable() {
		_, rows := v.payloadArea()
		row := v.router.Row()
		if row < v.tableOffset {
			v.tableOffset = row
		} else if row >= v.tableOffset+rows {
			v.tableOffset = row - rows + 1
		}
	}

	cols, rows := v.fieldArea()
	scrollToCursor(v.router.CurrentField(), cols, rows)
}

func scrollToCursor(f textfield.Field, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	col, row := f.Cursor()
	scrollCol, scrollRow := f.ScrollOffset()

	dc, dr := 0, 0
	if col < scrollCol {
		dc = col - scrollCol
	} else if col >= scrollCol+cols {
		dc = col - scrollCol - cols + 1
	}
	if row < scrollRow {
		dr = row - scrollRow
	} else if row >= scrollRow+rows {
		dr = row - scrollRow - rows + 1
	}
	if dc != 0 || dr != 0 {
		f.Scroll(dc, dr)
	}
}

// Layout

type panels struct {
	method, address, payload, result components.Panel
}

func (v *MainView) panels() panels {
	body := max(v.height-addressHeight-statusBarHeight, 2)
	payloadHeight := max(body*2/5, 3)
	resultHeight := max(body-payloadHeight, 0)
	focused := v.router.Panel()

	return panels{
		method: components.Panel{
			Title:   focus.PanelMethod.String(),
			Width:   tui.MethodWidth,
			Height:  addressHeight,
			Focused: focused == focus.PanelMethod,
		},
		address: components.Panel{
			Title:   focus.PanelAddress.String(),
			Width:   max(v.width-tui.MethodWidth, 0),
			Height:  addressHeight,
			Focused: focused == focus.PanelAddress,
		},
		payload: components.Panel{
			Title:   focus.PanelPayload.String(),
			Width:   v.width,
			Height:  payloadHeight,
			Focused: focused == focus.PanelPayload,
		},
		result: components.Panel{
			Title:   focus.PanelResult.String(),
			Width:   v.width,
			Height:  resultHeight,
			Focused: focused == focus.PanelResult,
		},
	}
}

// payloadArea is the payload panel content below the tab bar.
func (v *MainView) payloadArea() (cols, rows int) {
	cols, rows = v.panels().payload.Inner()
	return cols, max(rows-1, 0)
}

func (v *MainView) isTable() bool {
	if v.router.InputType() == focus.InputHeaders {
		return true
	}
	return v.router.InputType() == focus.InputBody && v.router.Request().BodyFormat() != core.BodyRaw
}

func cellWidths(cols int) (key, value int) {
	avail := max(cols-len([]rune(cellSeparator)), 0)
	key = avail / 2
	return key, avail - key
}

// fieldArea is the visible size of the focused field.
func (v *MainView) fieldArea() (cols, rows int) {
	p := v.panels()
	switch v.router.Panel() {
	case focus.PanelAddress:
		cols, _ = p.address.Inner()
		return cols, 1
	case focus.PanelResult:
		return p.result.Inner()
	case focus.PanelPayload:
		cols, rows = v.payloadArea()
		switch {
		case v.isTable():
			key, value := cellWidths(cols)
			if v.router.InputField() == focus.FieldValue {
				return value, 1
			}
			return key, 1
		case v.router.InputType() == focus.InputAuth:
			return max(cols-authLabelWidth, 0), 1
		default:
			return cols, rows
		}
	}
	return 0, 0
}

// View renders the view.
func (v *MainView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}

	p := v.panels()
	req := v.router.Request()

	method := p.method.Render([]string{components.MethodStyle(req.Method()).Render(req.Method())})

	addrCols, _ := p.address.Inner()
	address := p.address.Render(v.fields.Render(req.AddressField(), addrCols, 1, v.isFocused(req.AddressField())))

	resultCols, resultRows := p.result.Inner()
	result := p.result.Render(v.fields.Render(req.Result(), resultCols, resultRows, v.router.Panel() == focus.PanelResult))

	top := lipgloss.JoinHorizontal(lipgloss.Top, method, address)
	return lipgloss.JoinVertical(lipgloss.Left, top, p.payload.Render(v.renderPayload()), result, v.renderStatusBar())
}

func (v *MainView) isFocused(f textfield.Field) bool {
	return v.router.CurrentField() == f
}

func (v *MainView) renderPayload() []string {
	cols, rows := v.payloadArea()
	lines := []string{v.renderTabBar()}
	req := v.router.Request()

	switch {
	case v.router.InputType() == focus.InputAuth:
		lines = append(lines, v.renderAuth(cols)...)
	case v.isTable():
		table := req.HeaderTable()
		if v.router.InputType() == focus.InputBody {
			table = req.BodyTable()
		}
		lines = append(lines, v.renderTable(table, cols, rows)...)
	default:
		field := req.RawBodyField()
		lines = append(lines, v.fields.Render(field, cols, rows, v.isFocused(field))...)
	}
	return lines
}

func (v *MainView) renderTabBar() string {
	req := v.router.Request()
	var tabs []string
	for _, t := range focus.InputTypes {
		name := t.String()
		switch t {
		case focus.InputAuth:
			name += " [" + req.Auth().Format.String() + "]"
		case focus.InputBody:
			name += " [" + req.BodyFormat().String() + "]"
		}

		style := lipgloss.NewStyle().Padding(0, 1)
		if t == v.router.InputType() {
			style = style.Bold(true).Background(lipgloss.Color("240"))
			if v.router.Panel() == focus.PanelPayload {
				style = style.Background(tui.ActiveBorderColor).Foreground(lipgloss.Color("229"))
			}
		}
		tabs = append(tabs, style.Render(name))
	}
	return strings.Join(tabs, " ")
}

func (v *MainView) renderTable(table *core.RowTable, cols, rows int) []string {
	keyCols, valueCols := cellWidths(cols)
	sep := lipgloss.NewStyle().Foreground(tui.InactiveBorderColor).Render(cellSeparator)

	var lines []string
	for i := v.tableOffset; i < table.Len() && len(lines) < rows; i++ {
		row := table.Row(i)
		key := v.cell(row.Key, keyCols)
		value := v.cell(row.Value, valueCols)
		lines = append(lines, key+sep+value)
	}
	return lines
}

// cell renders a single-line field padded to cols cells.
func (v *MainView) cell(f textfield.Field, cols int) string {
	text := strings.Join(v.fields.Render(f, cols, 1, v.isFocused(f)), "")
	if pad := cols - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func (v *MainView) renderAuth(cols int) []string {
	auth := v.router.Request().Auth()
	label := lipgloss.NewStyle().Width(authLabelWidth).Foreground(lipgloss.Color("245"))
	fieldCols := max(cols-authLabelWidth, 0)

	switch auth.Format {
	case core.AuthBasic:
		return []string{
			label.Render("Username") + v.cell(auth.Username, fieldCols),
			label.Render("Password") + v.cell(auth.Password, fieldCols),
		}
	case core.AuthBearer:
		return []string{label.Render("Token") + v.cell(auth.Token, fieldCols)}
	default:
		return []string{lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("No authentication")}
	}
}

// renderStatusBar renders the bottom status bar.
func (v *MainView) renderStatusBar() string {
	var items []string

	modeStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch v.controller.Mode() {
	case vim.ModeInsert:
		modeStyle = modeStyle.Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0"))
	case vim.ModeVisual:
		modeStyle = modeStyle.Background(lipgloss.Color("141")).Foreground(lipgloss.Color("255"))
	default:
		modeStyle = modeStyle.Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255"))
	}
	items = append(items, modeStyle.Render(v.controller.Mode().String()))

	paneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	items = append(items, paneStyle.Render(v.router.Panel().String()))

	if pending := v.controller.Pending(); pending != "" {
		items = append(items, lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(pending))
	}

	if v.sending {
		items = append(items, lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render("sending…"))
	}

	if v.notification != "" {
		notifyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true).Padding(0, 1)
		if strings.HasPrefix(v.notification, "✗") {
			notifyStyle = notifyStyle.Foreground(lipgloss.Color("160"))
		}
		items = append(items, notifyStyle.Render(v.notification))
	}

	left := strings.Join(items, " ")
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1).Render(v.helpHint())

	spacer := v.width - lipgloss.Width(left) - lipgloss.Width(hint)
	if spacer < 1 {
		hint = ""
		spacer = max(v.width-lipgloss.Width(left), 0)
	}

	barStyle := lipgloss.NewStyle().Width(v.width).MaxWidth(v.width).Background(lipgloss.Color("236"))
	return barStyle.Render(left + strings.Repeat(" ", spacer) + hint)
}

func (v *MainView) helpHint() string {
	var parts []string
	for _, b := range v.controller.KeyMap().Help() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}

// Title returns the view title.
func (v *MainView) Title() string {
	return "yarc"
}

// SetSize sets dimensions.
func (v *MainView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.ensureVisible()
}

// Width returns the width.
func (v *MainView) Width() int {
	return v.width
}

// Height returns the height.
func (v *MainView) Height() int {
	return v.height
}

// Router returns the focus router.
func (v *MainView) Router() *focus.Router {
	return v.router
}

// Controller returns the modal editing controller.
func (v *MainView) Controller() *vim.Controller {
	return v.controller
}

// Notification returns the current notification message.
func (v *MainView) Notification() string {
	return v.notification
}

// Sending reports whether a submission is in flight.
func (v *MainView) Sending() bool {
	return v.sending
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/artpar/yarc/internal/app"
	"github.com/artpar/yarc/internal/history/sqlite"
	"github.com/artpar/yarc/internal/tmux"
	"github.com/artpar/yarc/internal/tui"
	"github.com/artpar/yarc/internal/tui/views"
	"github.com/artpar/yarc/internal/tui/vim"
)

// RootOptions holds the flags shared by every command.
type RootOptions struct {
	File        string
	Timeout     time.Duration
	NoRedirects bool
	History     string
	Debug       string
}

// Config converts the flags into application configuration.
func (o *RootOptions) Config() app.Config {
	cfg := app.DefaultConfig()
	cfg.RequestFile = o.File
	cfg.Timeout = o.Timeout
	cfg.FollowRedirects = !o.NoRedirects
	cfg.HistoryPath = o.History
	cfg.DebugLog = o.Debug
	return cfg
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}
	defaults := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "yarc",
		Short:   "yarc - a vim-modal TUI HTTP request composer",
		Long:    "yarc edits a single HTTP request file with vim-style modes and sends it from the terminal.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.File, "file", "f", defaults.RequestFile, "Request file to edit")
	flags.DurationVar(&opts.Timeout, "timeout", defaults.Timeout, "Request timeout")
	flags.BoolVar(&opts.NoRedirects, "no-redirects", false, "Do not follow redirects")
	flags.StringVar(&opts.History, "history", defaults.HistoryPath, "History database path (empty disables history)")
	flags.StringVar(&opts.Debug, "debug", "", "Write debug log to this file")

	cmd.AddCommand(NewSendCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// newApp builds the application from the flags, opening the history
// database when one is configured.
func newApp(opts *RootOptions) (*app.App, error) {
	cfg := opts.Config()
	appOpts := []app.Option{app.WithConfig(cfg)}

	if cfg.HistoryPath != "" {
		path := app.ExpandHome(cfg.HistoryPath)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
		store, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		appOpts = append(appOpts, app.WithHistory(store))
	}

	return app.New(appOpts...), nil
}

// setupLogging sends the standard logger to the debug file, or discards it
// so nothing is written over the TUI.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "yarc")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}

// tuiModel wraps the MainView for bubbletea
type tuiModel struct {
	view tui.Component
}

func (m tuiModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.view.Update(msg)
	m.view = updated
	return m, cmd
}

func (m tuiModel) View() string {
	return m.view.View()
}

// runTUI starts the TUI application
func runTUI(opts *RootOptions) error {
	logFile, err := setupLogging(opts.Debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	application, err := newApp(opts)
	if err != nil {
		return err
	}
	defer application.Close()

	req, err := application.Load(context.Background())
	if err != nil {
		return err
	}
	log.Printf("editing %s", req.Path())

	view := views.NewMainView(application, req,
		vim.WithCopySink(views.ClipboardSink{}),
		vim.WithPaneSwitcher(tmux.NewSwitcher()),
	)

	p := tea.NewProgram(tuiModel{view: view}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return err
	}
	return nil
}

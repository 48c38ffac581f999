// Package tmux moves tmux pane focus when navigation leaves the interface.
package tmux

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/artpar/yarc/internal/tui"
)

// Runner executes a command. Errors carry the command's stderr.
type Runner func(name string, args ...string) error

// Switcher selects the neighbouring tmux pane.
type Switcher struct {
	env func(string) string
	run Runner
}

// Option configures a Switcher.
type Option func(*Switcher)

// WithEnv overrides environment lookup.
func WithEnv(env func(string) string) Option {
	return func(s *Switcher) {
		s.env = env
	}
}

// WithRunner overrides command execution.
func WithRunner(run Runner) Option {
	return func(s *Switcher) {
		s.run = run
	}
}

// NewSwitcher creates a switcher using the process environment.
func NewSwitcher(opts ...Option) *Switcher {
	s := &Switcher{
		env: os.Getenv,
		run: runCommand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Target returns the select-pane target for dir.
func Target(dir tui.NavDirection) string {
	switch dir {
	case tui.NavLeft:
		return "{left-of}"
	case tui.NavDown:
		return "{down-of}"
	case tui.NavUp:
		return "{up-of}"
	default:
		return "{right-of}"
	}
}

// Socket extracts the server socket path from a $TMUX value.
func Socket(tmux string) string {
	socket, _, _ := strings.Cut(tmux, ",")
	return socket
}

// SelectPane focuses the pane next to the current one. Outside tmux it
// does nothing.
func (s *Switcher) SelectPane(dir tui.NavDirection) error {
	socket := Socket(s.env("TMUX"))
	if socket == "" {
		return nil
	}
	return s.run("tmux", "-S", socket, "select-pane", "-t", Target(dir))
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

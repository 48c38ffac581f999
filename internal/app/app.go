package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/artpar/yarc/internal/core"
	"github.com/artpar/yarc/internal/history"
	httpclient "github.com/artpar/yarc/internal/protocol/http"
	"github.com/artpar/yarc/internal/storage/filesystem"
)

// Requester is the interface for protocol adapters.
type Requester interface {
	Send(ctx context.Context, req *core.Request) (*core.Response, error)
	Protocol() string
}

// Config holds application configuration.
type Config struct {
	RequestFile     string
	Timeout         time.Duration
	FollowRedirects bool
	HistoryPath     string
	HistoryKeep     int
	DebugLog        string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RequestFile:     "request.yaml",
		Timeout:         30 * time.Second,
		FollowRedirects: true,
		HistoryPath:     "~/.yarc/history.db",
		HistoryKeep:     1000,
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// App is the main application container with dependency injection.
type App struct {
	config    Config
	requester Requester
	history   history.Store
	requests  *filesystem.RequestStore
}

// Option is a function that configures the App.
type Option func(*App)

// New creates a new App with the given options. Without WithRequester the
// HTTP client is built from the configuration.
func New(opts ...Option) *App {
	app := &App{
		config:   DefaultConfig(),
		requests: filesystem.NewRequestStore(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.requester == nil {
		clientOpts := []httpclient.Option{httpclient.WithTimeout(app.config.Timeout)}
		if !app.config.FollowRedirects {
			clientOpts = append(clientOpts, httpclient.WithNoRedirects())
		}
		app.requester = httpclient.NewClient(clientOpts...)
	}

	return app
}

// WithConfig sets the application configuration.
func WithConfig(cfg Config) Option {
	return func(a *App) {
		a.config = cfg
	}
}

// WithRequester sets the protocol adapter used for submissions.
func WithRequester(requester Requester) Option {
	return func(a *App) {
		a.requester = requester
	}
}

// WithHistory sets the store submissions are recorded in.
func WithHistory(store history.Store) Option {
	return func(a *App) {
		a.history = store
	}
}

// Config returns the application configuration.
func (a *App) Config() Config {
	return a.config
}

// Requester returns the protocol adapter.
func (a *App) Requester() Requester {
	return a.requester
}

// History returns the history store, or nil when history is disabled.
func (a *App) History() history.Store {
	return a.history
}

// Load reads the configured request file, or starts a fresh request bound
// to it when the file does not exist.
func (a *App) Load(ctx context.Context) (*core.Request, error) {
	return a.requests.LoadOrNew(ctx, a.config.RequestFile)
}

// Save writes req back to the file it was loaded from.
func (a *App) Save(ctx context.Context, req *core.Request) error {
	return a.requests.Save(ctx, req)
}

// Submit sends req and records the outcome in history. A failure to record
// history is logged and does not affect the returned response.
func (a *App) Submit(ctx context.Context, req *core.Request) (*core.Response, error) {
	entry := history.Entry{
		Timestamp: time.Now(),
		Method:    req.Method(),
		URL:       req.Address(),
	}

	resp, err := a.requester.Send(ctx, req)
	if err != nil {
		entry.Error = err.Error()
		entry.ResponseTime = time.Since(entry.Timestamp).Milliseconds()
	} else {
		entry.Status = resp.StatusCode
		entry.StatusText = resp.Status
		entry.ResponseTime = resp.Duration.Milliseconds()
		entry.ResponseSize = int64(len(resp.Body))
	}

	// The send may have used up ctx; history is recorded regardless.
	a.record(context.WithoutCancel(ctx), entry)

	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entry.Method, entry.URL, err)
	}
	return resp, nil
}

func (a *App) record(ctx context.Context, entry history.Entry) {
	if a.history == nil {
		return
	}
	if _, err := a.history.Add(ctx, entry); err != nil {
		log.Printf("history: %v", err)
		return
	}
	if a.config.HistoryKeep > 0 {
		if _, err := a.history.Prune(ctx, a.config.HistoryKeep); err != nil {
			log.Printf("history prune: %v", err)
		}
	}
}

// Close releases the history store.
func (a *App) Close() error {
	if a.history == nil {
		return nil
	}
	return a.history.Close()
}

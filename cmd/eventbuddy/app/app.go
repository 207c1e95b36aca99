// Package app provides the application context and dependency management
// for the eventbuddy CLI. It centralizes configuration, logging, and the
// client instance behind one struct that commands receive through a
// narrow interface.
package app

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/eventbuddy/eventbuddy"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// App represents the eventbuddy application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	buddy eventbuddy.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// SeedPath returns the configured seed file path.
func (a *App) SeedPath() string {
	return a.config.SeedPath
}

// Format returns the configured output format.
func (a *App) Format() string {
	return a.config.Format
}

// Buddy returns the client instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Buddy() (eventbuddy.Client, error) {
	a.mu.RLock()
	if a.buddy != nil {
		buddy := a.buddy
		a.mu.RUnlock()
		return buddy, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.buddy != nil {
		return a.buddy, nil
	}

	buddy, err := eventbuddy.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.buddy = buddy
	return buddy, nil
}

// Persist writes the catalog back to the configured seed file. Without
// a seed path the catalog stays in memory only.
func (a *App) Persist() error {
	if a.config.SeedPath == "" {
		a.logger.Debug().Msg("No seed path configured, skipping save")
		return nil
	}

	buddy, err := a.Buddy()
	if err != nil {
		return err
	}
	return buddy.Save(a.config.SeedPath)
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []eventbuddy.Option {
	opts := []eventbuddy.Option{
		eventbuddy.WithLogger(a.logger),
	}

	switch {
	case a.config.SeedPath == "":
		opts = append(opts, eventbuddy.WithoutSeed())
	case !fileExists(a.config.SeedPath):
		// The seed file may simply not exist yet; it gets created on
		// the first mutating command.
		a.logger.Debug().Str("seed", a.config.SeedPath).Msg("Seed file not found, starting empty")
		opts = append(opts, eventbuddy.WithoutSeed())
	default:
		opts = append(opts, eventbuddy.WithSeedPath(a.config.SeedPath))
	}

	return opts
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(buddy eventbuddy.Client) Option {
	return func(a *App) error {
		a.buddy = buddy
		return nil
	}
}

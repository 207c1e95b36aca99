// Package cmd implements the eventbuddy CLI subcommands. Commands
// receive their dependencies through the AppContext interface so they
// stay decoupled from the app package.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/eventbuddy/eventbuddy"
)

// AppContext is the slice of the application that commands depend on.
type AppContext interface {
	// Buddy returns the shared client instance.
	Buddy() (eventbuddy.Client, error)

	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// SeedPath returns the configured seed file path.
	SeedPath() string

	// Format returns the configured output format.
	Format() string

	// Persist writes the catalog back to the seed file, if one is
	// configured.
	Persist() error
}

package eventbuddy

import (
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
	"github.com/eventbuddy/eventbuddy/pkg/logging"
)

// options holds the configured state for a client.
type options struct {
	seedPath string
	seedFS   fs.FS
	seedName string
	catalog  *catalog.Catalog
	skipSeed bool
	logger   *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		logger: logging.Default(),
	}
}

// Option is a function that configures a Client.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// WithSeedPath seeds the catalog from a JSON or YAML file on disk.
func WithSeedPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "path",
				Message: "cannot be empty",
			}
		}
		o.seedPath = path
		return nil
	}
}

// WithSeedFS seeds the catalog from a file inside the given filesystem,
// typically an embed.FS carrying bundled seed data.
func WithSeedFS(fsys fs.FS, name string) Option {
	return func(o *options) error {
		if fsys == nil {
			return &errors.ValidationError{
				Field:   "fsys",
				Message: "cannot be nil",
			}
		}
		o.seedFS = fsys
		o.seedName = name
		return nil
	}
}

// WithCatalog adopts an already-populated catalog instead of seeding one.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(o *options) error {
		if cat == nil {
			return &errors.ValidationError{
				Field:   "catalog",
				Message: "cannot be nil",
			}
		}
		o.catalog = cat
		return nil
	}
}

// WithoutSeed starts the client on an empty catalog, skipping seed
// loading entirely.
func WithoutSeed() Option {
	return func(o *options) error {
		o.skipSeed = true
		return nil
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}

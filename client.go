package eventbuddy

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/constants"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// client is the internal implementation of the Client interface.
type client struct {
	catalog *catalog.Catalog
	logger  *zerolog.Logger
}

// New creates a new Client instance with the given options. Unless
// configured otherwise the catalog starts empty; WithSeedPath and
// WithSeedFS populate it from a seed document before New returns.
func New(opts ...Option) (Client, error) {
	options, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}

	c := &client{
		catalog: options.catalog,
		logger:  options.logger,
	}
	if c.catalog == nil {
		c.catalog = catalog.New()
	}

	if err := c.seed(options); err != nil {
		return nil, err
	}
	return c, nil
}

// seed populates the catalog from the configured seed source.
func (c *client) seed(options *options) error {
	if options.skipSeed || options.catalog != nil {
		return nil
	}

	var (
		seed *Seed
		err  error
		name string
	)
	switch {
	case options.seedFS != nil:
		name = options.seedName
		seed, err = loadSeedFS(options.seedFS, name)
	case options.seedPath != "":
		name = options.seedPath
		seed, err = loadSeedFile(name)
	default:
		return nil
	}
	if err != nil {
		return errors.WrapResource("load", "seed", name, err)
	}

	c.catalog.Load(seed.Events, seed.Tags, seed.participants())
	c.logger.Info().
		Str("seed", name).
		Int("events", len(seed.Events)).
		Int("tags", len(seed.Tags)).
		Int("participants", len(seed.participants())).
		Msg("Catalog seeded")
	return nil
}

// Catalog returns the live catalog.
func (c *client) Catalog() *catalog.Catalog {
	return c.catalog
}

// Save writes the catalog to path. The encoding follows the file
// extension: .json writes JSON, anything else writes YAML.
func (c *client) Save(path string) error {
	data, err := snapshot(c.catalog).encode(formatForPath(path))
	if err != nil {
		return errors.WrapResource("save", "catalog", path, err)
	}

	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	c.logger.Debug().Str("path", path).Msg("Catalog saved")
	return nil
}

// Export writes the catalog to w in the named format: json, yaml, or ics.
func (c *client) Export(w io.Writer, format string) error {
	if format == constants.FormatICS {
		return c.ExportICS(w)
	}

	data, err := snapshot(c.catalog).encode(format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "export stream", err)
	}
	return nil
}

package eventbuddy

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/constants"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// Seed is the on-disk catalog document. All three collections are
// optional; absent collections load empty. Earlier seed files named the
// participant collection "users", so that key is still accepted on read
// but never written.
type Seed struct {
	Events       []catalog.Event       `json:"events,omitempty" yaml:"events,omitempty"`
	Tags         []catalog.Tag         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Participants []catalog.Participant `json:"participants,omitempty" yaml:"participants,omitempty"`

	// LegacyUsers holds participants read from the legacy "users" key.
	LegacyUsers []catalog.Participant `json:"users,omitempty" yaml:"users,omitempty"`
}

// participants merges the current and legacy participant keys, current
// key first.
func (s *Seed) participants() []catalog.Participant {
	if len(s.LegacyUsers) == 0 {
		return s.Participants
	}
	return append(append([]catalog.Participant{}, s.Participants...), s.LegacyUsers...)
}

// readSeed decodes seed data by file extension: .json uses JSON, .yaml
// and .yml use YAML.
func readSeed(name string, data []byte) (*Seed, error) {
	var seed Seed
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, &seed); err != nil {
			return nil, errors.WrapParse(constants.FormatJSON, name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return nil, errors.WrapParse(constants.FormatYAML, name, err)
		}
	default:
		return nil, &errors.ParseError{
			Format:  "seed",
			File:    name,
			Message: "unsupported seed format, expected .json, .yaml, or .yml",
		}
	}
	return &seed, nil
}

// loadSeedFile reads and decodes a seed file from disk.
func loadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return readSeed(path, data)
}

// loadSeedFS reads and decodes a seed file from a filesystem, typically
// an embed.FS.
func loadSeedFS(fsys fs.FS, name string) (*Seed, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return readSeed(name, data)
}

// snapshot captures the catalog's current state as a seed document.
func snapshot(cat *catalog.Catalog) *Seed {
	return &Seed{
		Events:       cat.Events(),
		Tags:         cat.Tags(),
		Participants: cat.Participants(),
	}
}

// encode serializes the seed in the named format.
func (s *Seed) encode(format string) ([]byte, error) {
	switch format {
	case constants.FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case constants.FormatYAML:
		return yaml.Marshal(s)
	default:
		return nil, &errors.ValidationError{
			Field:   "format",
			Value:   format,
			Message: "unsupported seed format, expected json or yaml",
		}
	}
}

// formatForPath maps a file extension to a seed encoding, defaulting to
// YAML for unknown extensions.
func formatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return constants.FormatJSON
	}
	return constants.FormatYAML
}

package eventbuddy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

const seedJSON = `{
  "events": [
    {"id": 1, "title": "Launch", "date": "2024-05-01", "time": "18:00", "location": "Berlin", "status": "planned", "tagIds": [1], "participantIds": [1]},
    {"id": 2, "title": "Wrap", "date": "2024-06-01", "status": "completed"}
  ],
  "tags": [{"id": 1, "name": "Work"}],
  "participants": [{"id": 1, "name": "Ada Lovelace", "email": "ada@example.com"}]
}`

const seedYAML = `events:
  - id: 1
    title: Launch
    date: "2024-05-01"
    status: planned
tags:
  - id: 1
    name: Work
participants:
  - id: 1
    name: Ada Lovelace
`

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewWithSeedPath(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		buddy, err := New(WithSeedPath(writeSeed(t, "seed.json", seedJSON)))
		require.NoError(t, err)

		events := buddy.Catalog().Events()
		require.Len(t, events, 2)
		assert.Equal(t, "Launch", events[0].Title)
		assert.Equal(t, catalog.StatusCompleted, events[1].Status)
		assert.Len(t, buddy.Catalog().Tags(), 1)
		assert.Len(t, buddy.Catalog().Participants(), 1)

		// Counters resume past the seeded ids.
		added := buddy.Catalog().AddEvent(catalog.Event{Title: "Next", Date: "2024-07-01", Status: catalog.StatusPlanned})
		assert.Equal(t, 3, added.ID)
	})

	t.Run("YAML", func(t *testing.T) {
		buddy, err := New(WithSeedPath(writeSeed(t, "seed.yaml", seedYAML)))
		require.NoError(t, err)
		require.Len(t, buddy.Catalog().Events(), 1)
		assert.Equal(t, "Launch", buddy.Catalog().Events()[0].Title)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := New(WithSeedPath(filepath.Join(t.TempDir(), "absent.json")))
		require.Error(t, err)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := New(WithSeedPath(writeSeed(t, "bad.json", "{not json")))
		require.Error(t, err)
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		_, err := New(WithSeedPath(writeSeed(t, "seed.toml", "events = []")))
		require.Error(t, err)
	})
}

func TestNewWithSeedFS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/seed.json": &fstest.MapFile{Data: []byte(seedJSON)},
	}

	buddy, err := New(WithSeedFS(fsys, "data/seed.json"))
	require.NoError(t, err)
	assert.Len(t, buddy.Catalog().Events(), 2)
}

func TestNewLegacyUsersKey(t *testing.T) {
	seed := `{"users": [{"id": 1, "name": "Ada Lovelace"}]}`
	buddy, err := New(WithSeedPath(writeSeed(t, "legacy.json", seed)))
	require.NoError(t, err)

	participants := buddy.Catalog().Participants()
	require.Len(t, participants, 1)
	assert.Equal(t, "Ada Lovelace", participants[0].Name)
	assert.Equal(t, "AL", participants[0].Avatar)
}

func TestNewWithoutSeed(t *testing.T) {
	buddy, err := New(WithoutSeed())
	require.NoError(t, err)
	assert.Empty(t, buddy.Catalog().Events())
}

func TestNewWithCatalog(t *testing.T) {
	cat := catalog.New()
	cat.AddTag("Party")

	buddy, err := New(WithCatalog(cat))
	require.NoError(t, err)
	assert.Len(t, buddy.Catalog().Tags(), 1)
}

func TestNewOptionValidation(t *testing.T) {
	_, err := New(WithSeedPath(""))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithCatalog(nil))
	require.Error(t, err)

	_, err = New(WithSeedFS(nil, "seed.json"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{"json", "yaml"} {
		t.Run(strings.ToUpper(ext), func(t *testing.T) {
			buddy, err := New(WithSeedPath(writeSeed(t, "seed.json", seedJSON)))
			require.NoError(t, err)

			out := filepath.Join(t.TempDir(), "out."+ext)
			require.NoError(t, buddy.Save(out))

			reloaded, err := New(WithSeedPath(out))
			require.NoError(t, err)
			assert.Equal(t, buddy.Catalog().Events(), reloaded.Catalog().Events())
			assert.Equal(t, buddy.Catalog().Tags(), reloaded.Catalog().Tags())
			assert.Equal(t, buddy.Catalog().Participants(), reloaded.Catalog().Participants())
		})
	}
}

func TestExport(t *testing.T) {
	buddy, err := New(WithSeedPath(writeSeed(t, "seed.json", seedJSON)))
	require.NoError(t, err)

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, buddy.Export(&buf, "json"))
		assert.Contains(t, buf.String(), `"title": "Launch"`)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, buddy.Export(&buf, "yaml"))
		assert.Contains(t, buf.String(), "title: Launch")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		require.Error(t, buddy.Export(&buf, "xml"))
	})
}

func TestExportICS(t *testing.T) {
	buddy, err := New(WithSeedPath(writeSeed(t, "seed.json", seedJSON)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, buddy.ExportICS(&buf))
	out := buf.String()

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:Launch")
	assert.Contains(t, out, "LOCATION:Berlin")
	assert.Contains(t, out, "UID:eventbuddy-1")
	// The timed event carries a concrete start.
	assert.Contains(t, out, "20240501T180000Z")
	// The untimed event falls back to an all-day entry.
	assert.Contains(t, out, "UID:eventbuddy-2")
}

func TestExportICSSkipsUnparseableDates(t *testing.T) {
	cat := catalog.New()
	cat.AddEvent(catalog.Event{Title: "Good", Date: "2024-05-01", Status: catalog.StatusPlanned})
	cat.AddEvent(catalog.Event{Title: "Bad", Date: "someday", Status: catalog.StatusPlanned})

	buddy, err := New(WithCatalog(cat))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, buddy.ExportICS(&buf))
	assert.Contains(t, buf.String(), "SUMMARY:Good")
	assert.NotContains(t, buf.String(), "SUMMARY:Bad")
}

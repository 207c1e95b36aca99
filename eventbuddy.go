// Package eventbuddy provides the main entry point for the eventbuddy
// event catalog. It wraps the in-memory catalog with seed loading,
// persistence, and export, behind a small client interface configured
// through functional options.
//
// Example usage:
//
//	// Create a client seeded from a file
//	buddy, err := eventbuddy.New(eventbuddy.WithSeedPath("events.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// React to catalog changes
//	sub := buddy.Catalog().Subscribe(func(n catalog.Notification) {
//	    log.Printf("changed: %s/%s", n.Topic, n.Action)
//	})
//	defer sub.Cancel()
//
//	// Work with events
//	ev := buddy.Catalog().AddEvent(catalog.Event{
//	    Title:  "Launch",
//	    Date:   "2024-05-01",
//	    Status: catalog.StatusPlanned,
//	})
//	fmt.Println(ev.ID)
//
//	// Persist the catalog back to the seed file
//	if err := buddy.Save("events.yaml"); err != nil {
//	    log.Fatal(err)
//	}
package eventbuddy

import (
	"io"

	"github.com/eventbuddy/eventbuddy/pkg/catalog"
)

// Store provides access to the underlying event catalog.
type Store interface {
	// Catalog returns the live catalog. All reads hand out defensive
	// copies, so callers can hold the result across mutations.
	Catalog() *catalog.Catalog
}

// Persistence handles writing the catalog back to disk.
type Persistence interface {
	// Save writes the catalog to path, choosing the encoding from the
	// file extension (.json, .yaml, .yml).
	Save(path string) error
}

// Exporter serializes the catalog to an output stream.
type Exporter interface {
	// Export writes the catalog to w in the named format
	// (json, yaml, or ics).
	Export(w io.Writer, format string) error

	// ExportICS writes the event collection to w as an iCalendar feed.
	ExportICS(w io.Writer) error
}

// Client is the top-level handle on an eventbuddy catalog.
type Client interface {

	// Store provides access to the underlying event catalog
	Store

	// Persistence handles writing the catalog back to disk
	Persistence

	// Exporter serializes the catalog to an output stream
	Exporter
}

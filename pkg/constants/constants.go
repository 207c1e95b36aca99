// Package constants provides shared constants used throughout the eventbuddy
// codebase. This includes entity defaults, date layouts, file permissions,
// and configuration values that should be consistent across the application.
package constants

// Entity defaults
const (
	// DefaultEventIcon is the glyph assigned to events created without one
	DefaultEventIcon = "📅"

	// AvatarMaxInitials is the number of name tokens used for derived avatars
	AvatarMaxInitials = 2
)

// Date and time layouts used by seed data and exports
const (
	// DateLayout is the calendar date form used by event dates
	DateLayout = "2006-01-02"

	// TimeLayout is the clock time form used by event times
	TimeLayout = "15:04"
)

// File handling constants
const (
	// DefaultSeedFile is the seed file name used when none is configured
	DefaultSeedFile = "eventbuddy.yaml"

	// FilePermissions is the default permission for created files
	FilePermissions = 0o644
)

// Export format names accepted by the facade and the CLI
const (
	// FormatJSON is the JSON export format
	FormatJSON = "json"

	// FormatYAML is the YAML export format
	FormatYAML = "yaml"

	// FormatICS is the iCalendar export format
	FormatICS = "ics"
)

// ICSProductID identifies this application in exported calendars
const ICSProductID = "-//eventbuddy//event catalog//EN"

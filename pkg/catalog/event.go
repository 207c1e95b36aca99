package catalog

import (
	"github.com/eventbuddy/eventbuddy/pkg/constants"
)

// Status represents the lifecycle state of an event.
type Status string

// String returns the string representation of a Status.
func (s Status) String() string {
	return string(s)
}

// Event statuses.
const (
	// StatusPlanned marks an event that has not happened yet
	StatusPlanned Status = "planned"

	// StatusCompleted marks an event that already took place
	StatusCompleted Status = "completed"
)

// Event represents a single calendar entry in the catalog.
//
// TagIDs and ParticipantIDs are non-owning references into the tag and
// participant collections; they preserve insertion order and contain no
// duplicates. The catalog hands out copies of events, so mutating a
// returned Event never affects stored state.
type Event struct {
	ID             int    `json:"id" yaml:"id"`                                       // Unique event identifier, immutable after creation
	Title          string `json:"title" yaml:"title"`                                 // Display title
	Date           string `json:"date" yaml:"date"`                                   // Calendar date in ISO form (YYYY-MM-DD)
	Time           string `json:"time,omitempty" yaml:"time,omitempty"`               // Optional clock time (HH:MM)
	Location       string `json:"location,omitempty" yaml:"location,omitempty"`       // Optional venue
	Description    string `json:"description,omitempty" yaml:"description,omitempty"` // Optional free text
	Status         Status `json:"status" yaml:"status"`                               // planned or completed
	Icon           string `json:"icon,omitempty" yaml:"icon,omitempty"`               // Short display glyph
	TagIDs         []int  `json:"tagIds,omitempty" yaml:"tagIds,omitempty"`           // Referenced tag ids
	ParticipantIDs []int  `json:"participantIds,omitempty" yaml:"participantIds,omitempty"` // Referenced participant ids
}

// HasTag reports whether the event references the given tag.
func (e *Event) HasTag(tagID int) bool {
	return containsID(e.TagIDs, tagID)
}

// AddTag appends a tag reference if not already present.
func (e *Event) AddTag(tagID int) {
	if !e.HasTag(tagID) {
		e.TagIDs = append(e.TagIDs, tagID)
	}
}

// RemoveTag drops a tag reference, preserving the order of the rest.
func (e *Event) RemoveTag(tagID int) {
	e.TagIDs = removeID(e.TagIDs, tagID)
}

// HasParticipant reports whether the event references the given participant.
func (e *Event) HasParticipant(participantID int) bool {
	return containsID(e.ParticipantIDs, participantID)
}

// AddParticipant appends a participant reference if not already present.
func (e *Event) AddParticipant(participantID int) {
	if !e.HasParticipant(participantID) {
		e.ParticipantIDs = append(e.ParticipantIDs, participantID)
	}
}

// RemoveParticipant drops a participant reference, preserving order.
func (e *Event) RemoveParticipant(participantID int) {
	e.ParticipantIDs = removeID(e.ParticipantIDs, participantID)
}

// clone returns a deep copy so callers never share id slices with the store.
func (e Event) clone() Event {
	out := e
	out.TagIDs = copyIDs(e.TagIDs)
	out.ParticipantIDs = copyIDs(e.ParticipantIDs)
	return out
}

// normalize applies construction defaults: the fallback icon and
// duplicate suppression in the id sets.
func (e *Event) normalize() {
	if e.Icon == "" {
		e.Icon = constants.DefaultEventIcon
	}
	e.TagIDs = dedupeIDs(e.TagIDs)
	e.ParticipantIDs = dedupeIDs(e.ParticipantIDs)
}

// EventUpdate describes a partial update to an event. Nil fields are left
// unchanged; non-nil fields are applied even when they point at an empty
// value, so an intentional clear (e.g. removing a location) is never
// mistaken for "not provided". The id slices follow the same discipline:
// nil means unchanged, a non-nil empty slice clears the set.
type EventUpdate struct {
	Title          *string
	Date           *string
	Time           *string
	Location       *string
	Description    *string
	Status         *Status
	Icon           *string
	TagIDs         []int
	ParticipantIDs []int
}

// apply copies the provided fields onto the stored event.
func (u EventUpdate) apply(e *Event) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Time != nil {
		e.Time = *u.Time
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.Icon != nil {
		e.Icon = *u.Icon
	}
	if u.TagIDs != nil {
		e.TagIDs = dedupeIDs(u.TagIDs)
	}
	if u.ParticipantIDs != nil {
		e.ParticipantIDs = dedupeIDs(u.ParticipantIDs)
	}
}

// containsID reports whether ids contains id.
func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeID returns ids without id, preserving order.
func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// copyIDs returns a fresh slice with the same contents.
func copyIDs(ids []int) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// dedupeIDs returns a fresh slice with duplicates suppressed, first
// occurrence wins, order preserved.
func dedupeIDs(ids []int) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

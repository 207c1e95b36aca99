package catalog

// Filter is a set of optional criteria narrowing the event collection.
// Nil criteria impose no constraint; all supplied criteria must hold
// for an event to match (conjunctive, never disjunctive).
type Filter struct {
	// Status matches events whose status equals it exactly.
	Status *Status

	// ParticipantID matches events whose participant set contains it.
	ParticipantID *int

	// TagID matches events whose tag set contains it.
	TagID *int
}

// matches reports whether the event satisfies every supplied criterion.
func (f Filter) matches(ev *Event) bool {
	if f.Status != nil && ev.Status != *f.Status {
		return false
	}
	if f.ParticipantID != nil && !ev.HasParticipant(*f.ParticipantID) {
		return false
	}
	if f.TagID != nil && !ev.HasTag(*f.TagID) {
		return false
	}
	return true
}

// FilterEvents returns the ordered subsequence of Events matching the
// filter. An empty filter returns the full event list in storage order.
// Filtering is a pure read: repeated calls over an unchanged catalog
// return equal results.
func (c *Catalog) FilterEvents(f Filter) []Event {
	matched := make([]Event, 0, c.events.len())
	c.events.forEach(func(ev *Event) bool {
		if f.matches(ev) {
			matched = append(matched, ev.clone())
		}
		return true
	})
	return matched
}

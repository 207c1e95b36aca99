// Package catalog provides the in-memory event catalog at the heart of
// eventbuddy. It owns three keyed collections — events, tags, and
// participants — assigns ids, enforces referential integrity between
// tags and events, and publishes a typed notification for every
// mutation so dependent views can re-query and re-render.
//
// The catalog performs no I/O and validates no input beyond what it
// needs for construction: required-field validation is a concern of the
// collaborator that accepts user input. Missing entities are reported
// as absent results, never as errors; the one error the catalog raises
// itself is the tag-in-use guard on DeleteTag.
//
// Example usage:
//
//	cat := catalog.New()
//	sub := cat.Subscribe(func(n catalog.Notification) {
//	    // re-render whatever depends on n.Topic
//	})
//	defer sub.Cancel()
//
//	ev := cat.AddEvent(catalog.Event{Title: "Launch", Date: "2024-05-01", Status: catalog.StatusPlanned})
//	loc := "Berlin"
//	_, _ = cat.UpdateEvent(ev.ID, catalog.EventUpdate{Location: &loc})
package catalog

import (
	"sync"

	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

// Catalog is the sole mutable owner of the event, tag, and participant
// collections. Construct one with New and seed it with Load.
//
// All collections are guarded for concurrent reads, but the mutation
// contract is single-caller: each mutating operation applies its change
// and delivers its notification before returning, as one step from the
// caller's perspective. Notifications are delivered outside the
// collection locks so handlers can re-query the catalog.
type Catalog struct {
	mu sync.Mutex // guards the id counters

	events       *eventSet
	tags         *tagSet
	participants *participantSet
	notifier     *notifier

	nextEventID       int
	nextTagID         int
	nextParticipantID int
}

// New creates an empty catalog. Id assignment starts at 1 for all three
// entity types until Load observes higher ids in seed data.
func New() *Catalog {
	return &Catalog{
		events:            newEventSet(),
		tags:              newTagSet(),
		participants:      newParticipantSet(),
		notifier:          newNotifier(),
		nextEventID:       1,
		nextTagID:         1,
		nextParticipantID: 1,
	}
}

// Subscribe registers a handler for all catalog notifications and
// returns a handle that cancels the subscription. Delivery is
// synchronous and follows subscription order.
func (c *Catalog) Subscribe(fn Handler) *Subscription {
	return c.notifier.subscribe(fn)
}

// Load bulk-seeds the three collections, replacing any prior state, and
// sets each next-id counter to one past the maximum id present (or 1
// for an empty collection). Entities are normalized on the way in: the
// default icon is applied, id sets are deduplicated, and missing
// avatars are derived. Load publishes a single Loaded notification.
func (c *Catalog) Load(events []Event, tags []Tag, participants []Participant) {
	c.events.clear()
	c.tags.clear()
	c.participants.clear()

	c.mu.Lock()
	c.nextEventID = 1
	c.nextTagID = 1
	c.nextParticipantID = 1

	for _, p := range participants {
		stored := p
		stored.normalize()
		c.participants.put(&stored)
		if stored.ID >= c.nextParticipantID {
			c.nextParticipantID = stored.ID + 1
		}
	}

	for _, t := range tags {
		stored := t
		c.tags.put(&stored)
		if stored.ID >= c.nextTagID {
			c.nextTagID = stored.ID + 1
		}
	}

	for _, e := range events {
		stored := e.clone()
		stored.normalize()
		c.events.put(&stored)
		if stored.ID >= c.nextEventID {
			c.nextEventID = stored.ID + 1
		}
	}
	c.mu.Unlock()

	c.notifier.publish(Notification{Topic: TopicLoaded})
}

// Events returns a defensive copy of the event collection in insertion
// order. Deletions never reorder the survivors.
func (c *Catalog) Events() []Event {
	return c.events.list()
}

// Tags returns a defensive copy of the tag collection in insertion order.
func (c *Catalog) Tags() []Tag {
	return c.tags.list()
}

// Participants returns a defensive copy of the participant collection
// in insertion order.
func (c *Catalog) Participants() []Participant {
	return c.participants.list()
}

// Event returns a copy of the event by id, or false when absent.
func (c *Catalog) Event(id int) (Event, bool) {
	ev, ok := c.events.get(id)
	if !ok {
		return Event{}, false
	}
	return ev.clone(), true
}

// Tag returns the tag by id, or false when absent.
func (c *Catalog) Tag(id int) (Tag, bool) {
	tag, ok := c.tags.get(id)
	if !ok {
		return Tag{}, false
	}
	return *tag, true
}

// Participant returns the participant by id, or false when absent.
func (c *Catalog) Participant(id int) (Participant, bool) {
	p, ok := c.participants.get(id)
	if !ok {
		return Participant{}, false
	}
	return *p, true
}

// AddEvent stores a new event built from draft, ignoring any id the
// caller set: the catalog assigns the next event id. The draft is taken
// as given — no field validation happens here — but construction
// defaults apply (fallback icon, deduplicated id sets). Publishes an
// eventsChanged add notification and returns the stored event.
func (c *Catalog) AddEvent(draft Event) Event {
	c.mu.Lock()
	id := c.nextEventID
	c.nextEventID++
	c.mu.Unlock()

	stored := draft.clone()
	stored.ID = id
	stored.normalize()
	c.events.put(&stored)

	result := stored.clone()
	notified := stored.clone()
	c.notifier.publish(Notification{
		Topic:   TopicEvents,
		Action:  ActionAdd,
		Event:   &notified,
		EventID: id,
	})
	return result
}

// UpdateEvent applies a partial update to the event with the given id.
// Only fields present in the update are touched; everything else keeps
// its pre-update value. An unknown id is a no-op that returns false and
// publishes nothing. On success an eventsChanged update notification is
// published and the updated event is returned.
func (c *Catalog) UpdateEvent(id int, update EventUpdate) (Event, bool) {
	stored, ok := c.events.get(id)
	if !ok {
		return Event{}, false
	}

	updated := stored.clone()
	update.apply(&updated)
	updated.ID = id // ids are immutable
	c.events.put(&updated)

	result := updated.clone()
	notified := updated.clone()
	c.notifier.publish(Notification{
		Topic:   TopicEvents,
		Action:  ActionUpdate,
		Event:   &notified,
		EventID: id,
	})
	return result, true
}

// DeleteEvent removes the event with the given id. An unknown id is a
// no-op that returns false and publishes nothing. On success an
// eventsChanged delete notification carrying the id is published.
func (c *Catalog) DeleteEvent(id int) bool {
	if !c.events.delete(id) {
		return false
	}

	c.notifier.publish(Notification{
		Topic:   TopicEvents,
		Action:  ActionDelete,
		EventID: id,
	})
	return true
}

// AddTag stores a new tag with the next tag id. Duplicate names are
// permitted; identity lives in the id. Publishes a tagsChanged add
// notification and returns the stored tag.
func (c *Catalog) AddTag(name string) Tag {
	c.mu.Lock()
	id := c.nextTagID
	c.nextTagID++
	c.mu.Unlock()

	stored := Tag{ID: id, Name: name}
	c.tags.put(&stored)

	notified := stored
	c.notifier.publish(Notification{
		Topic:  TopicTags,
		Action: ActionAdd,
		Tag:    &notified,
		TagID:  id,
	})
	return stored
}

// DeleteTag removes the tag with the given id, guarded by referential
// integrity: when any stored event still references the tag, DeleteTag
// returns a TagInUseError, changes nothing, and publishes nothing. The
// check scans the full event collection at call time. An unknown id is
// a no-op that returns nil. On success a tagsChanged delete
// notification carrying the id is published.
func (c *Catalog) DeleteTag(id int) error {
	var inUse []int
	c.events.forEach(func(ev *Event) bool {
		if ev.HasTag(id) {
			inUse = append(inUse, ev.ID)
		}
		return true
	})
	if len(inUse) > 0 {
		return errors.NewTagInUseError(id, inUse)
	}

	if !c.tags.delete(id) {
		return nil
	}

	c.notifier.publish(Notification{
		Topic:  TopicTags,
		Action: ActionDelete,
		TagID:  id,
	})
	return nil
}

// AddParticipant stores a new participant with the next participant id,
// deriving avatar initials from the name when none are supplied.
// Publishes a participantsChanged add notification and returns the
// stored participant.
func (c *Catalog) AddParticipant(name, email, avatar string) Participant {
	c.mu.Lock()
	id := c.nextParticipantID
	c.nextParticipantID++
	c.mu.Unlock()

	stored := Participant{ID: id, Name: name, Email: email, Avatar: avatar}
	stored.normalize()
	c.participants.put(&stored)

	notified := stored
	c.notifier.publish(Notification{
		Topic:         TopicParticipants,
		Action:        ActionAdd,
		Participant:   &notified,
		ParticipantID: id,
	})
	return stored
}

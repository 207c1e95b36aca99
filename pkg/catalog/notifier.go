package catalog

import "sync"

// Topic identifies which part of the catalog a notification is about.
type Topic string

// Notification topics.
const (
	// TopicLoaded is published once after the catalog is bulk-seeded
	TopicLoaded Topic = "loaded"

	// TopicEvents is published for every event mutation
	TopicEvents Topic = "eventsChanged"

	// TopicTags is published for every tag mutation
	TopicTags Topic = "tagsChanged"

	// TopicParticipants is published for every participant mutation
	TopicParticipants Topic = "participantsChanged"
)

// Action discriminates what kind of mutation a notification describes.
type Action string

// Notification actions.
const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Notification describes one completed catalog mutation. For adds and
// updates the affected entity rides along as a copy; for deletes only
// the id is carried, since the entity no longer exists to hand back.
type Notification struct {
	Topic  Topic
	Action Action

	Event   *Event
	EventID int

	Tag   *Tag
	TagID int

	Participant   *Participant
	ParticipantID int
}

// Handler is a callback invoked for every notification.
//
// Handlers run synchronously on the mutating goroutine, in subscription
// order, after the mutation has been applied: re-querying the catalog
// from inside a handler always observes the post-mutation state.
type Handler func(Notification)

// Subscription is the handle returned by Subscribe. Cancel detaches the
// handler; it is safe to call more than once.
type Subscription struct {
	id       int
	notifier *notifier
}

// Cancel removes the subscription's handler from the notifier.
func (s *Subscription) Cancel() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// notifier fans mutations out to registered handlers in subscription order.
type notifier struct {
	mu       sync.RWMutex
	nextID   int
	order    []int
	handlers map[int]Handler
}

// newNotifier creates a notifier with no subscribers.
func newNotifier() *notifier {
	return &notifier{
		nextID:   1,
		handlers: make(map[int]Handler),
	}
}

// subscribe registers a handler and returns its cancellation handle.
func (n *notifier) subscribe(fn Handler) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.order = append(n.order, id)
	n.handlers[id] = fn
	return &Subscription{id: id, notifier: n}
}

// unsubscribe removes a handler by subscription id.
func (n *notifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.handlers[id]; !ok {
		return
	}
	delete(n.handlers, id)
	for i, v := range n.order {
		if v == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

// publish delivers one notification to every handler, in subscription
// order. Handlers are snapshotted first so they run outside the
// notifier lock and may subscribe, cancel, or re-query freely.
func (n *notifier) publish(msg Notification) {
	n.mu.RLock()
	handlers := make([]Handler, 0, len(n.order))
	for _, id := range n.order {
		handlers = append(handlers, n.handlers[id])
	}
	n.mu.RUnlock()

	for _, fn := range handlers {
		fn(msg)
	}
}

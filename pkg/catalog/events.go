package catalog

import "sync"

// eventSet is a concurrent safe, insertion-ordered map of events.
// Insertion order equals creation order; deletions do not reorder the
// survivors. The order index makes listing deterministic, which the
// filter engine and every listing accessor rely on.
type eventSet struct {
	mu    sync.RWMutex
	byID  map[int]*Event
	order []int
}

// newEventSet creates an empty event set.
func newEventSet() *eventSet {
	return &eventSet{
		byID: make(map[int]*Event),
	}
}

// get returns the stored event by id and whether it exists.
func (s *eventSet) get(id int) (*Event, bool) {
	s.mu.RLock()
	ev, ok := s.byID[id]
	s.mu.RUnlock()
	return ev, ok
}

// put stores an event, appending it to the order index when new.
func (s *eventSet) put(ev *Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[ev.ID]; !exists {
		s.order = append(s.order, ev.ID)
	}
	s.byID[ev.ID] = ev
}

// delete removes an event by id. Returns false if the id is unknown.
func (s *eventSet) delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return false
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// list returns deep copies of all events in insertion order.
func (s *eventSet) list() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]Event, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, s.byID[id].clone())
	}
	return events
}

// len returns the number of events.
func (s *eventSet) len() int {
	s.mu.RLock()
	length := len(s.byID)
	s.mu.RUnlock()
	return length
}

// forEach applies fn to each stored event in insertion order.
// If fn returns false, iteration stops early. fn must not retain or
// mutate the pointed-to event.
func (s *eventSet) forEach(fn func(ev *Event) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if !fn(s.byID[id]) {
			break
		}
	}
}

// clear removes all events and resets the order index.
func (s *eventSet) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int]*Event)
	s.order = nil
}

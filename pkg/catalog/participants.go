package catalog

import "sync"

// participantSet is a concurrent safe, insertion-ordered map of participants.
type participantSet struct {
	mu    sync.RWMutex
	byID  map[int]*Participant
	order []int
}

// newParticipantSet creates an empty participant set.
func newParticipantSet() *participantSet {
	return &participantSet{
		byID: make(map[int]*Participant),
	}
}

// get returns the stored participant by id and whether it exists.
func (s *participantSet) get(id int) (*Participant, bool) {
	s.mu.RLock()
	p, ok := s.byID[id]
	s.mu.RUnlock()
	return p, ok
}

// put stores a participant, appending it to the order index when new.
func (s *participantSet) put(p *Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.byID[p.ID] = p
}

// list returns copies of all participants in insertion order.
func (s *participantSet) list() []Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	participants := make([]Participant, 0, len(s.order))
	for _, id := range s.order {
		participants = append(participants, *s.byID[id])
	}
	return participants
}

// clear removes all participants and resets the order index.
func (s *participantSet) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int]*Participant)
	s.order = nil
}

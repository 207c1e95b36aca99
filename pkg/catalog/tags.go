package catalog

import "sync"

// tagSet is a concurrent safe, insertion-ordered map of tags.
type tagSet struct {
	mu    sync.RWMutex
	byID  map[int]*Tag
	order []int
}

// newTagSet creates an empty tag set.
func newTagSet() *tagSet {
	return &tagSet{
		byID: make(map[int]*Tag),
	}
}

// get returns the stored tag by id and whether it exists.
func (s *tagSet) get(id int) (*Tag, bool) {
	s.mu.RLock()
	tag, ok := s.byID[id]
	s.mu.RUnlock()
	return tag, ok
}

// put stores a tag, appending it to the order index when new.
func (s *tagSet) put(tag *Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[tag.ID]; !exists {
		s.order = append(s.order, tag.ID)
	}
	s.byID[tag.ID] = tag
}

// delete removes a tag by id. Returns false if the id is unknown.
func (s *tagSet) delete(id int) bool {
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

// list returns copies of all tags in insertion order.
func (s *tagSet) list() []Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]Tag, 0, len(s.order))
	for _, id := range s.order {
		tags = append(tags, *s.byID[id])
	}
	return tags
}

// clear removes all tags and resets the order index.
func (s *tagSet) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int]*Tag)
	s.order = nil
}

package board

// Store is the in-memory task collection, keyed by id and kept in insertion
// order. It is not safe for concurrent use; the Engine guards it.
type Store struct {
	order []string
	byID  map[string]Task
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]Task)}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.order)
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// Has reports whether id is present.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Snapshot returns a copy of every task in insertion order.
func (s *Store) Snapshot() []Task {
	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// put inserts or replaces t; replacing keeps the original position.
func (s *Store) put(t Task) {
	if _, ok := s.byID[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.byID[t.ID] = t
}

func (s *Store) remove(id string) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

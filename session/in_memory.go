package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/haggle/core"
)

// ErrNotFound is returned when no session with the given id has been archived.
var ErrNotFound = fmt.Errorf("session not found")

// InMemoryStore is a volatile SessionStore implementation keeping archived
// sessions in a process local map. It is safe for concurrent access and best
// suited for tests, demos and single-run CLI invocations. Each stored and
// returned session is cloned to prevent external mutation of internal state.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Save archives a clone of the provided session snapshot, overwriting any
// previously stored snapshot with the same id.
func (s *InMemoryStore) Save(sess *core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = sess.Clone()
	return nil
}

// Get returns a clone of the archived session or ErrNotFound.
func (s *InMemoryStore) Get(id string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess.Clone(), nil
}

// List returns clones of all archived sessions ordered by id for stable
// iteration.
func (s *InMemoryStore) List() ([]*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	result := make([]*core.Session, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.sessions[id].Clone())
	}
	return result, nil
}

package searchapi

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrBadCapacity is returned by NewRunStore for a non-positive capacity.
var ErrBadCapacity = errors.New("searchapi: run store capacity must be positive")

// RunStore keeps the most recent search responses in memory. When full, the
// oldest entry is evicted. Safe for concurrent use.
type RunStore struct {
	mu    sync.Mutex
	max   int
	order []uuid.UUID // insertion order, oldest first
	runs  map[uuid.UUID]SearchResponse
}

// NewRunStore returns a store holding at most max runs.
func NewRunStore(max int) (*RunStore, error) {
	if max <= 0 {
		return nil, ErrBadCapacity
	}
	return &RunStore{
		max:   max,
		order: make([]uuid.UUID, 0, max),
		runs:  make(map[uuid.UUID]SearchResponse, max),
	}, nil
}

// Put records resp under resp.ID.
func (s *RunStore) Put(resp SearchResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[resp.ID]; !ok {
		if len(s.order) == s.max {
			delete(s.runs, s.order[0])
			s.order = s.order[1:]
		}
		s.order = append(s.order, resp.ID)
	}
	s.runs[resp.ID] = resp
}

// Get returns the run stored under id.
func (s *RunStore) Get(id uuid.UUID) (SearchResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp, ok := s.runs[id]
	return resp, ok
}

// Len returns the number of stored runs.
func (s *RunStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

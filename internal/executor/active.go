package executor

import (
	"sync"
	"time"
)

// activeEntry records one in-flight item
type activeEntry struct {
	index   int
	label   string
	started time.Time
}

// activeSet is the shared record of items currently in flight, keyed by
// worker id. It exists for the duration of one batch. All mutation
// happens under a single mutex held only for the bookkeeping update,
// never across the handler call. Its size at any instant equals the
// number of in-flight items and can never exceed the worker bound,
// since each worker holds at most one entry.
type activeSet struct {
	mu      sync.Mutex
	entries map[int]activeEntry
	peak    int
}

// reset prepares the set for a new batch
func (s *activeSet) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[int]activeEntry)
	s.peak = 0
}

// enter records that a worker started an item.
// Peak concurrency is sampled immediately after the insertion.
func (s *activeSet) enter(worker, index int, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[int]activeEntry)
	}
	s.entries[worker] = activeEntry{index: index, label: label, started: time.Now()}
	if n := len(s.entries); n > s.peak {
		s.peak = n
	}
}

// exit removes a worker's entry when its item reaches a terminal state
func (s *activeSet) exit(worker int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, worker)
}

// size returns the number of items currently in flight
func (s *activeSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// peakSize returns the maximum size observed since the last reset
func (s *activeSet) peakSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peak
}

// indexes returns the submission indexes of all in-flight items.
// Labels are not unique across a batch, so abandonment decisions key
// on the index.
func (s *activeSet) indexes() map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := make(map[int]bool, len(s.entries))
	for _, e := range s.entries {
		idx[e.index] = true
	}
	return idx
}

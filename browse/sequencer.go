package browse

import "sync"

// Sequencer numbers catalog requests so that a slow earlier response cannot
// overwrite the result of a later one. Issue a number with Next before each
// request and gate the result with Accept.
type Sequencer struct {
	mu     sync.Mutex
	latest uint64
}

// Next issues the sequence number for a new request, superseding all
// earlier ones.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Accept reports whether a response with the given sequence number is still
// current and may be applied.
func (s *Sequencer) Accept(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.latest
}

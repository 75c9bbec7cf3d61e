// File: game/test_utils.go
package game

import "sync"

// SequenceSource replays a fixed list of values as a RandomSource, cycling
// when it runs out. It makes Reset deterministic in tests and replays.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic sequence IDs. It is shared by every
// engine so that operation order across the WAL is totally ordered.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer starting from a given value: 0 on a fresh start,
// the last recovered seq after replay.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset moves the sequencer forward to v. Only used after recovery; it never
// moves backwards so already-issued IDs cannot repeat.
func (s *Sequencer) Reset(v uint64) {
	for {
		cur := s.next.Load()
		if v <= cur || s.next.CompareAndSwap(cur, v) {
			return
		}
	}
}

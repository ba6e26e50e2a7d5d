package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic sequence numbers for commands
// entering the engine. Zero is never issued.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer whose first Next returns start+1.
// On a fresh start start is 0; after recovery it is the last replayed seq.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next global sequence number.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence number.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset moves the sequencer to v. Only used after replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}

package memory

import (
	"sync"
	"sync/atomic"
)

// Pool is a typed object pool. Put resets an object before it becomes
// reusable, so Get never returns stale state.
type Pool[T any] struct {
	p     sync.Pool
	reset func(*T)

	allocated atomic.Uint64
	gets      atomic.Uint64
	released  atomic.Uint64
}

// NewPool builds a pool. reset may be nil, in which case released objects
// are overwritten with their zero value.
func NewPool[T any](reset func(*T)) *Pool[T] {
	p := &Pool[T]{reset: reset}
	p.p.New = func() any {
		p.allocated.Add(1)
		return new(T)
	}
	return p
}

func (p *Pool[T]) Get() *T {
	v := p.p.Get().(*T)
	p.gets.Add(1)
	return v
}

func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	if p.reset != nil {
		p.reset(v)
	} else {
		var zero T
		*v = zero
	}
	p.released.Add(1)
	p.p.Put(v)
}

// Stats is a point-in-time view of pool traffic.
type Stats struct {
	Gets      uint64
	Allocated uint64
	Released  uint64
}

// InUse is the number of objects handed out and not yet released.
func (s Stats) InUse() uint64 {
	return s.Gets - s.Released
}

func (p *Pool[T]) Stats() Stats {
	return Stats{
		Gets:      p.gets.Load(),
		Allocated: p.allocated.Load(),
		Released:  p.released.Load(),
	}
}

// Package memo provides a lazily computed value that is published exactly once.
//
// A Cell is safe for concurrent use. The first Get runs the supplied build
// function; callers that arrive while the build is in flight block until it
// finishes, and every caller after that reads the stored value without taking
// a lock. There is no way to reset or recompute a published Cell.
package memo

import (
	"sync"
	"sync/atomic"
)

// Cell holds a value computed on first demand. The zero value is ready to use.
// A Cell must not be copied after first use.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	ready atomic.Bool
}

// Get returns the stored value, running build first if no value has been
// published yet. Only one build runs at a time. If build panics nothing is
// published: the panic reaches that caller and the next Get builds again.
func (c *Cell[T]) Get(build func() T) T {
	if c.ready.Load() {
		return c.value
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready.Load() {
		c.value = build()
		c.ready.Store(true)
	}
	return c.value
}

// Ready reports whether a value has been published.
func (c *Cell[T]) Ready() bool {
	return c.ready.Load()
}

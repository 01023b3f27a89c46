package workspace

import (
	"sync"
	"sync/atomic"
)

// Cell is an observable value holder. Reads are lock-free and always see a
// complete value; Set replaces the value and then notifies subscribers in
// the order they subscribed. Only one goroutine may call Set.
type Cell[T any] struct {
	value   atomic.Pointer[T]
	version atomic.Uint64

	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewCell returns a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	c := &Cell[T]{}
	c.value.Store(&initial)
	return c
}

// Get returns the latest published value.
func (c *Cell[T]) Get() T {
	if p := c.value.Load(); p != nil {
		return *p
	}
	var zero T
	return zero
}

// Version returns the number of values published since creation.
func (c *Cell[T]) Version() uint64 {
	return c.version.Load()
}

// Set publishes v and notifies subscribers on the caller's goroutine.
func (c *Cell[T]) Set(v T) {
	c.value.Store(&v)
	c.version.Add(1)

	c.mu.Lock()
	subs := make([]subscriber[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers fn to run after every Set. The returned function
// removes the subscription.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

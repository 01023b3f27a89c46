package app

import (
	"sync"

	"github.com/justyntemme/scribe/internal/workspace"
)

// Queue is an unbounded FIFO of actions. Any goroutine may Push; only the
// event loop may Pop. Push never blocks, so a producer that outpaces the
// loop grows the queue without limit.
type Queue struct {
	mu    sync.Mutex
	items []workspace.Action
	ready chan struct{}
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends a to the queue and wakes the consumer.
func (q *Queue) Push(a workspace.Action) {
	q.mu.Lock()
	q.items = append(q.items, a)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Pop blocks until an action is available and returns the oldest one.
func (q *Queue) Pop() workspace.Action {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			a := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			q.mu.Unlock()
			return a
		}
		q.mu.Unlock()
		<-q.ready
	}
}

// Len returns the number of queued actions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

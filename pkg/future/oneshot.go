package future

import "sync"

type cellState uint8

const (
	cellEmpty cellState = iota
	cellFull
	cellConsumed
	cellClosed
)

// cell is the one-shot handoff slot between the worker goroutine and the
// polling side. The worker stores at most one value; the consumer removes it
// at most once. After Close the slot refuses deliveries.
type cell[T any] struct {
	mu    sync.Mutex
	state cellState
	value T
}

// put stores the value produced by the worker. It reports false when the
// slot no longer accepts values because the handle was closed.
func (c *cell[T]) put(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != cellEmpty {
		return false
	}
	c.value = v
	c.state = cellFull
	return true
}

// take removes the stored value. The slot does not retain a copy; consumed
// reports that an earlier take already removed it.
func (c *cell[T]) take() (v T, ok bool, consumed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case cellFull:
		v = c.value
		var zero T
		c.value = zero
		c.state = cellConsumed
		return v, true, false
	case cellConsumed:
		return v, false, true
	default:
		return v, false, false
	}
}

// close rejects future deliveries and discards an undelivered value.
// A consumed slot stays consumed.
func (c *cell[T]) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == cellEmpty || c.state == cellFull {
		var zero T
		c.value = zero
		c.state = cellClosed
	}
}

func (c *cell[T]) status() cellState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

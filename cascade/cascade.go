// Package cascade implements dependent-selection controllers: a select whose
// option set is scoped by another control's current value (branch to teacher
// list, course to batch list). A parent change supersedes any in-flight fetch
// through a generation counter, so a slow response for a stale parent can
// never overwrite a newer selection's options.
package cascade

import (
	"context"
	"sync"
)

// Loader fetches the child options scoped to one parent id.
type Loader[T any] func(ctx context.Context, parentID uint) ([]T, error)

// Snapshot is a consistent view of the controller for rendering. While
// Loading is true the dependent select is disabled and shows a placeholder.
type Snapshot[T any] struct {
	ParentID uint
	Options  []T
	Loading  bool
	Err      error
}

// Controller owns the state of one dependent select.
type Controller[T any] struct {
	mu         sync.Mutex
	loader     Loader[T]
	onChange   func(Snapshot[T])
	parentID   uint
	options    []T
	loading    bool
	err        error
	generation uint64
	cancel     context.CancelFunc
	closed     bool
}

// New creates a controller around a loader. onChange, when non-nil, is
// invoked after every state change with a snapshot (render hook).
func New[T any](loader Loader[T], onChange func(Snapshot[T])) *Controller[T] {
	return &Controller[T]{
		loader:   loader,
		onChange: onChange,
	}
}

// SetParent records a new parent selection. The previous option list is
// cleared immediately so no stale options flash while the fetch runs. Passing
// zero clears the selection without issuing a fetch. Any in-flight fetch is
// cancelled and its result dropped.
func (c *Controller[T]) SetParent(parentID uint) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.generation++
	gen := c.generation
	c.parentID = parentID
	c.options = nil
	c.err = nil
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if parentID == 0 {
		c.loading = false
		c.mu.Unlock()
		c.notify()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.loading = true
	c.mu.Unlock()
	c.notify()

	go func() {
		options, err := c.loader(ctx, parentID)
		cancel()

		c.mu.Lock()
		if gen != c.generation || c.closed {
			// a newer selection superseded this fetch
			c.mu.Unlock()
			return
		}
		c.loading = false
		c.cancel = nil
		if err != nil {
			c.err = err
		} else {
			c.options = options
		}
		c.mu.Unlock()
		c.notify()
	}()
}

// Reload re-issues the fetch for the current parent, for explicit
// "Try Again" actions after a failed load.
func (c *Controller[T]) Reload() {
	c.mu.Lock()
	parentID := c.parentID
	c.mu.Unlock()
	c.SetParent(parentID)
}

// Snapshot returns the current state. The options slice is shared, callers
// must treat it as read-only.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{
		ParentID: c.parentID,
		Options:  c.options,
		Loading:  c.loading,
		Err:      c.err,
	}
}

// Close cancels any pending fetch and drops future updates. Safe to call more
// than once; the unmount hook of whatever view owns the select.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.generation++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.loading = false
}

func (c *Controller[T]) notify() {
	if c.onChange == nil {
		return
	}
	c.onChange(c.Snapshot())
}

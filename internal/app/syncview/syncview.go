// internal/app/syncview/syncview.go

// Package syncview maintains an ordered in-memory mirror of one
// server-side collection for the lifetime of a live view: it seeds
// itself with a one-shot query, then applies change-feed events until
// the view is torn down.
//
// Apply semantics (per identifier):
//   - insert is idempotent: an event for an identifier already present
//     replaces it in place (at-least-once delivery, and the seed query
//     can race the view's own echoed insert);
//   - update replaces in place, preserving position; an update for an
//     unknown identifier inserts it (the seed can miss documents written
//     between query and subscribe);
//   - delete for an unknown identifier is a no-op.
//
// Events are applied by a single goroutine in delivery order; nothing is
// reordered or coalesced.
package syncview

import (
	"context"
	"sync"

	"github.com/dalemusser/matterhub/internal/app/changefeed"
	"go.uber.org/zap"
)

// Entity is anything with a stable string identity.
type Entity interface {
	EntityID() string
}

// State is the view-facing tri-state of the mirror. Loading and Empty
// are distinct: Loading means the seed query has not returned yet,
// Empty means it returned zero rows.
type State int

const (
	StateLoading State = iota
	StateEmpty
	StatePopulated
)

// Placement decides where a newly inserted entity lands.
type Placement int

const (
	// PrependNewest puts new entities first (matters, notes).
	PrependNewest Placement = iota
	// AppendArrival puts new entities last, in arrival order (contacts).
	AppendArrival
)

// Config wires a Collection to its seed query and change feed.
type Config[T Entity] struct {
	// Seed performs the one-shot query that establishes initial state.
	Seed func(ctx context.Context) ([]T, error)
	// Events is the change feed; a closed channel ends reconciliation.
	Events <-chan changefeed.Event[T]
	// Release tears down the feed subscription. Called exactly once,
	// on Close or on seed failure.
	Release func()
	// Placement selects the canonical insertion position.
	Placement Placement
	// Log receives apply diagnostics. Required.
	Log *zap.Logger
}

// Collection is the live mirror. All exported methods are safe for
// concurrent use; the items slice is owned exclusively by this instance.
type Collection[T Entity] struct {
	mu    sync.Mutex
	items []T
	state State

	placement Placement
	log       *zap.Logger

	changed chan struct{}

	cancel  context.CancelFunc
	done    chan struct{}
	release func()
	once    sync.Once
}

// New starts the seed-then-reconcile loop and returns the collection.
// The caller must Close it on every exit path of the hosting view.
func New[T Entity](ctx context.Context, cfg Config[T]) *Collection[T] {
	runCtx, cancel := context.WithCancel(ctx)
	c := &Collection[T]{
		state:     StateLoading,
		placement: cfg.Placement,
		log:       cfg.Log,
		changed:   make(chan struct{}, 1),
		cancel:    cancel,
		done:      make(chan struct{}),
		release:   cfg.Release,
	}
	go c.run(runCtx, cfg.Seed, cfg.Events)
	return c
}

func (c *Collection[T]) run(ctx context.Context, seed func(context.Context) ([]T, error), events <-chan changefeed.Event[T]) {
	defer close(c.done)

	items, err := seed(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.log.Error("seed query failed", zap.Error(err))
		}
		// A mirror that never seeded is useless; end the loop. Close
		// still works and the release below stops event delivery.
		c.doRelease()
		return
	}

	c.mu.Lock()
	c.items = items
	c.setStateLocked()
	c.mu.Unlock()
	c.notify()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.apply(ev)
			c.notify()
		}
	}
}

// apply reconciles one event. All-or-nothing: the lock spans the whole
// mutation, so a snapshot never observes a half-applied event.
func (c *Collection[T]) apply(ev changefeed.Event[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Kind {
	case changefeed.KindInsert, changefeed.KindUpdate:
		if ev.Doc == nil {
			c.log.Warn("dropping event without document", zap.String("id", ev.ID))
			return
		}
		if i, ok := c.indexLocked(ev.ID); ok {
			// Present already: replace in place regardless of kind.
			c.items[i] = *ev.Doc
		} else {
			c.insertLocked(*ev.Doc)
		}
	case changefeed.KindDelete:
		if i, ok := c.indexLocked(ev.ID); ok {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		// Unknown identifier: no-op, not an error.
	}
	c.setStateLocked()
}

func (c *Collection[T]) insertLocked(doc T) {
	switch c.placement {
	case PrependNewest:
		c.items = append([]T{doc}, c.items...)
	default:
		c.items = append(c.items, doc)
	}
}

func (c *Collection[T]) indexLocked(id string) (int, bool) {
	for i := range c.items {
		if c.items[i].EntityID() == id {
			return i, true
		}
	}
	return 0, false
}

func (c *Collection[T]) setStateLocked() {
	if len(c.items) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StatePopulated
	}
}

// notify signals Changed without blocking; pending signals coalesce.
func (c *Collection[T]) notify() {
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

// Snapshot returns the current state and a copy of the items in their
// canonical order. Derived filtering/sorting belongs to the caller.
func (c *Collection[T]) Snapshot() ([]T, State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, c.state
}

// Changed delivers a coalesced signal after the seed completes and after
// every applied event.
func (c *Collection[T]) Changed() <-chan struct{} {
	return c.changed
}

// Close stops reconciliation and releases the subscription. It is
// idempotent and returns only after the apply loop has exited, so no
// event is applied once Close returns.
func (c *Collection[T]) Close() {
	c.cancel()
	c.doRelease()
	<-c.done
}

func (c *Collection[T]) doRelease() {
	c.once.Do(func() {
		if c.release != nil {
			c.release()
		}
	})
}

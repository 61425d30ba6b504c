// Package cache implements the keyed, revalidating fetch layer between the
// presentation side and the resource gateways. Entries move through explicit
// states (fresh, stale, loading, errored) and at most one request is in
// flight per key at any time.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type State string

const (
	StateFresh   State = "fresh"
	StateStale   State = "stale"
	StateLoading State = "loading"
	StateErrored State = "errored"
)

// Loader performs the actual fetch for a key, typically a resource gateway
// call through the transport client.
type Loader func(ctx context.Context) (any, error)

// Result is the stable shape consumers render from. Errors are reported
// here and never panic or escape the cache boundary.
type Result struct {
	Value     any
	IsLoading bool
	Err       error
	State     State
}

type entry struct {
	value     any
	hasValue  bool
	fetchedAt time.Time
	inFlight  bool
	err       error
}

type Coordinator struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

// NewCoordinator creates a coordinator whose entries stay fresh for ttl
// after a successful fetch.
func NewCoordinator(ttl time.Duration) *Coordinator {
	return &Coordinator{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Resolve returns the cached value for key, fetching via loader when the
// entry is missing, stale, or errored.
//
// A fresh entry is returned without touching the loader. A stale entry is
// returned immediately while a revalidation runs in the background. A first
// fetch blocks until the loader finishes or ctx is cancelled; in the latter
// case the fetch keeps running and populates the cache for other consumers
// of the same key.
func (c *Coordinator) Resolve(ctx context.Context, key string, loader Loader) Result {
	c.mu.Lock()
	e := c.entries[key]
	if e == nil {
		e = &entry{}
		c.entries[key] = e
	}

	if e.hasValue && e.err == nil && c.now().Sub(e.fetchedAt) < c.ttl {
		value := e.value
		c.mu.Unlock()
		return Result{Value: value, State: StateFresh}
	}

	if e.hasValue {
		// Stale, or errored with a previous value still usable for
		// stale-while-revalidate display.
		value, err := e.value, e.err
		if !e.inFlight {
			e.inFlight = true
			c.fetch(context.WithoutCancel(ctx), key, loader)
		}
		c.mu.Unlock()
		return Result{Value: value, IsLoading: true, Err: err, State: StateStale}
	}

	// First fetch for this key. Concurrent resolvers join the same
	// singleflight call instead of issuing duplicates.
	e.inFlight = true
	c.mu.Unlock()

	ch := c.fetch(context.WithoutCancel(ctx), key, loader)
	select {
	case res := <-ch:
		if res.Err != nil {
			return Result{Err: res.Err, State: StateErrored}
		}
		return Result{Value: res.Val, State: StateFresh}
	case <-ctx.Done():
		return Result{IsLoading: true, Err: ctx.Err(), State: StateLoading}
	}
}

func (c *Coordinator) fetch(ctx context.Context, key string, loader Loader) <-chan singleflight.Result {
	return c.group.DoChan(key, func() (any, error) {
		value, err := loader(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		e := c.entries[key]
		if e == nil {
			// Invalidated mid-flight; the completed fetch still
			// populates the cache for later consumers.
			e = &entry{}
			c.entries[key] = e
		}
		e.inFlight = false
		if err != nil {
			e.err = err
			return nil, err
		}
		e.value = value
		e.hasValue = true
		e.err = nil
		e.fetchedAt = c.now()
		return value, nil
	})
}

// Invalidate drops the entry for key so the next Resolve re-fetches.
// Required after state-changing operations such as submitting a solve.
func (c *Coordinator) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.group.Forget(key)
}

// InvalidateResource drops every entry for a resource regardless of its
// parameters, e.g. all cached assignments-list variants after a solve.
func (c *Coordinator) InvalidateResource(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if keyResource(key) == resource {
			delete(c.entries, key)
			c.group.Forget(key)
		}
	}
}

// Reset drops every entry, e.g. when the session ends at logout.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		delete(c.entries, key)
		c.group.Forget(key)
	}
}

// StateOf reports the current state of a key without triggering a fetch.
func (c *Coordinator) StateOf(key string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entries[key]
	switch {
	case e == nil:
		return StateLoading
	case e.err != nil && !e.hasValue:
		return StateErrored
	case e.inFlight && !e.hasValue:
		return StateLoading
	case e.hasValue && e.err == nil && c.now().Sub(e.fetchedAt) < c.ttl:
		return StateFresh
	default:
		return StateStale
	}
}

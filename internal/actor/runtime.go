package actor

import (
	"context"
	"sync"
)

// Runtime serializes operations per actor key. All calls against one
// key execute in strict serial order; calls against different keys run
// concurrently. This is the only synchronization mechanism in the
// system: state for a given entity never crosses an actor boundary, so
// per-key ordering is sufficient.
//
// Durability is provided separately by the storage layer; the runtime
// only owns execution order.
type Runtime struct {
	mu    sync.Mutex
	locks map[Key]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewRuntime creates an empty runtime
func NewRuntime() *Runtime {
	return &Runtime{
		locks: make(map[Key]*keyLock),
	}
}

// Do runs fn while holding the key's lock. If the context is already
// cancelled when the lock is acquired, fn is not run.
func (r *Runtime) Do(ctx context.Context, key Key, fn func(ctx context.Context) error) error {
	l := r.acquire(key)
	l.mu.Lock()
	defer func() {
		l.mu.Unlock()
		r.release(key)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}

// acquire returns the lock for a key, creating it on first use.
// Locks are refcounted so the table does not grow with every key ever
// touched.
func (r *Runtime) acquire(key Key) *keyLock {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[key]
	if !ok {
		l = &keyLock{}
		r.locks[key] = l
	}
	l.refs++
	return l
}

func (r *Runtime) release(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[key]
	if !ok {
		return
	}
	l.refs--
	if l.refs <= 0 {
		delete(r.locks, key)
	}
}

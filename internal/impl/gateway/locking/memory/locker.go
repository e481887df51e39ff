package impl_memlock

import (
	"context"
	"fmt"
	"sync"

	port_locking "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/locking"
	"golang.org/x/sync/semaphore"
)

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// Locker holds one binary semaphore per account key for as long as someone
// holds or waits on it.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	ordered := port_locking.Order(keys)
	held := make([]string, 0, len(ordered))

	for _, key := range ordered {
		e := l.ref(key)
		if err := e.sem.Acquire(ctx, 1); err != nil {
			l.unref(key, false)
			l.releaseAll(held)
			return nil, fmt.Errorf("%w: %s: %w", port_locking.ErrLockUnavailable, key, err)
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() { once.Do(func() { l.releaseAll(held) }) }, nil
}

func (l *Locker) ref(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.locks[key] = e
	}
	e.refs++

	return e
}

func (l *Locker) unref(key string, acquired bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.locks[key]
	if acquired {
		e.sem.Release(1)
	}

	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *Locker) releaseAll(held []string) {
	for i := len(held) - 1; i >= 0; i-- {
		l.unref(held[i], true)
	}
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}

package port_locking

import (
	"context"
	"errors"
	"slices"
)

var ErrLockUnavailable = errors.New("locking: lock unavailable")

// AccountLocker serializes work on accounts. Lock acquires every key in one
// fixed global order and blocks until all are held, ctx is done or the
// implementation gives up. Release must be called exactly once.
type AccountLocker interface {
	Lock(ctx context.Context, keys ...string) (release func(), err error)
}

// Order returns keys sorted and deduplicated. Every implementation acquires
// in this order, so two lockers never wait on each other in a cycle.
func Order(keys []string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}

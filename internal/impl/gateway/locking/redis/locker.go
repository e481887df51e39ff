package impl_redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	port_locking "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/locking"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const maxTries = 1000

var (
	ErrExpiryInvalid     = errors.New("lock expiry must be greater than 0")
	ErrTriesInvalid      = errors.New("lock tries must be between 1 and 1000")
	ErrRetryDelayInvalid = errors.New("lock retry delay cannot be negative")
)

type Options struct {
	// Expiry bounds how long a crashed holder can block an account. It must
	// exceed the longest unit of work.
	Expiry     time.Duration
	Tries      int
	RetryDelay time.Duration
	Prefix     string
}

func DefaultOptions() Options {
	return Options{
		Expiry:     10 * time.Second,
		Tries:      64,
		RetryDelay: 50 * time.Millisecond,
		Prefix:     "ledger:account:",
	}
}

func (o Options) validate() error {
	if o.Expiry <= 0 {
		return ErrExpiryInvalid
	}

	if o.Tries < 1 || o.Tries > maxTries {
		return ErrTriesInvalid
	}

	if o.RetryDelay < 0 {
		return ErrRetryDelayInvalid
	}

	return nil
}

// Locker takes one redsync mutex per account so several ledger processes
// can share the same accounts.
type Locker struct {
	rs   *redsync.Redsync
	opts Options
	log  *zap.Logger
}

func New(client redis.UniversalClient, opts Options, log *zap.Logger) (*Locker, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &Locker{
		rs:   redsync.New(goredis.NewPool(client)),
		opts: opts,
		log:  log,
	}, nil
}

func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	ordered := port_locking.Order(keys)
	held := make([]*redsync.Mutex, 0, len(ordered))

	for _, key := range ordered {
		m := l.rs.NewMutex(
			l.opts.Prefix+key,
			redsync.WithExpiry(l.opts.Expiry),
			redsync.WithTries(l.opts.Tries),
			redsync.WithRetryDelay(l.opts.RetryDelay),
		)

		if err := m.LockContext(ctx); err != nil {
			l.log.Warn("failed to acquire lock", zap.String("lock_key", m.Name()), zap.Error(err))
			l.unlockAll(held)
			return nil, fmt.Errorf("%w: %s: %w", port_locking.ErrLockUnavailable, key, err)
		}

		held = append(held, m)
	}

	var once sync.Once
	return func() { once.Do(func() { l.unlockAll(held) }) }, nil
}

// unlockAll runs detached from the caller's ctx: a cancelled request must
// still give its locks back.
func (l *Locker) unlockAll(held []*redsync.Mutex) {
	for i := len(held) - 1; i >= 0; i-- {
		m := held[i]
		if ok, err := m.UnlockContext(context.Background()); !ok || err != nil {
			l.log.Error("failed to release lock",
				zap.String("lock_key", m.Name()),
				zap.Bool("unlock_ok", ok),
				zap.Error(err),
			)
		}
	}
}

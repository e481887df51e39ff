package impl_redislock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	impl_redislock "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/locking/redis"
	port_locking "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/locking"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var _ port_locking.AccountLocker = (*impl_redislock.Locker)(nil)

func newLocker(t *testing.T, tries int) (*impl_redislock.Locker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	opts := impl_redislock.DefaultOptions()
	opts.Tries = tries
	opts.RetryDelay = 10 * time.Millisecond

	l, err := impl_redislock.New(client, opts, zaptest.NewLogger(t))
	require.NoError(t, err)

	return l, mr
}

func TestLocker_AcquireAndRelease(t *testing.T) {
	l, mr := newLocker(t, 1)
	ctx := context.Background()

	release, err := l.Lock(ctx, "b", "a", "b")
	require.NoError(t, err)

	assert.True(t, mr.Exists("ledger:account:a"))
	assert.True(t, mr.Exists("ledger:account:b"))

	_, err = l.Lock(ctx, "a")
	assert.ErrorIs(t, err, port_locking.ErrLockUnavailable)

	release()
	release()

	assert.False(t, mr.Exists("ledger:account:a"))
	assert.False(t, mr.Exists("ledger:account:b"))

	again, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	again()
}

func TestLocker_PartialAcquireIsUndone(t *testing.T) {
	l, mr := newLocker(t, 1)
	ctx := context.Background()

	hold, err := l.Lock(ctx, "c")
	require.NoError(t, err)
	defer hold()

	_, err = l.Lock(ctx, "a", "c")
	require.ErrorIs(t, err, port_locking.ErrLockUnavailable)

	assert.False(t, mr.Exists("ledger:account:a"), "lock on a must be given back")
}

func TestLocker_WaitsForHolder(t *testing.T) {
	l, _ := newLocker(t, 200)
	ctx := context.Background()

	hold, err := l.Lock(ctx, "a")
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		hold()
	}()

	release, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	release()
}

func TestNew_RejectsBadOptions(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	tests := []struct {
		name   string
		mutate func(*impl_redislock.Options)
		want   error
	}{
		{"zero expiry", func(o *impl_redislock.Options) { o.Expiry = 0 }, impl_redislock.ErrExpiryInvalid},
		{"zero tries", func(o *impl_redislock.Options) { o.Tries = 0 }, impl_redislock.ErrTriesInvalid},
		{"too many tries", func(o *impl_redislock.Options) { o.Tries = 1001 }, impl_redislock.ErrTriesInvalid},
		{"negative delay", func(o *impl_redislock.Options) { o.RetryDelay = -time.Second }, impl_redislock.ErrRetryDelayInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := impl_redislock.DefaultOptions()
			tt.mutate(&opts)

			_, err := impl_redislock.New(client, opts, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

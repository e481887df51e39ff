package cli_cmds

import (
	"context"
	"errors"
	"fmt"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"
	impl_memlock "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/locking/memory"
	impl_redislock "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/locking/redis"
	impl_memory "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/persistence/memory"
	impl_sqlite "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/persistence/sqlite"
	impl_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/platform"
	impl_http "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/http"
	impl_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/account"
	impl_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/bank"
	impl_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/transfer"
	port_locking "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/locking"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type storage struct {
	uow       port_persistence.UnitOfWork
	banks     port_persistence.BankRepository
	accounts  port_persistence.AccountRepository
	transfers port_persistence.TransferRepository
	ping      func(ctx context.Context) error
	close     func() error
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (*storage, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		s := impl_memory.NewStore()
		return &storage{
			uow:       s,
			banks:     s.Banks(),
			accounts:  s.Accounts(),
			transfers: s.Transfers(),
		}, nil
	case config.StorageSQLite:
		s, err := impl_sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return &storage{
			uow:       s,
			banks:     s.Banks(),
			accounts:  s.Accounts(),
			transfers: s.Transfers(),
			ping:      s.Ping,
			close:     s.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrStorageDriver, cfg.Driver)
	}
}

type lockBackend struct {
	locker port_locking.AccountLocker
	ping   func(ctx context.Context) error
	close  func() error
}

func openLocker(ctx context.Context, cfg config.LockConfig, log *zap.Logger) (*lockBackend, error) {
	switch cfg.Driver {
	case config.LockMemory:
		return &lockBackend{locker: impl_memlock.New()}, nil
	case config.LockRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.Join(fmt.Errorf("ping redis: %w", err), client.Close())
		}

		locker, err := impl_redislock.New(client, impl_redislock.Options{
			Expiry:     cfg.Expiry,
			Tries:      cfg.Tries,
			RetryDelay: cfg.RetryDelay,
			Prefix:     impl_redislock.DefaultOptions().Prefix,
		}, log.Named("lock"))
		if err != nil {
			return nil, errors.Join(err, client.Close())
		}

		return &lockBackend{
			locker: locker,
			ping:   func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close:  client.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrLockDriver, cfg.Driver)
	}
}

// app is the assembled ledger: adapters, use cases and the HTTP handler.
type app struct {
	server  *impl_http.Server
	closers []func() error
}

func buildApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	st, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	a := &app{}
	if st.close != nil {
		a.closers = append(a.closers, st.close)
	}

	lk, err := openLocker(ctx, cfg.Lock, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open locker: %w", err), a.Close())
	}
	if lk.close != nil {
		a.closers = append(a.closers, lk.close)
	}

	clock := impl_platform.NewSystemClock()
	ids := impl_platform.NewUUIDGenerator()

	uc := impl_http.UseCases{
		CreateBank: impl_bank.NewCreateBankUsecaseImpl(st.banks, ids, log.Named("bank")),
		GetBank:    impl_bank.NewGetBankUsecaseImpl(st.banks),
		ListBanks:  impl_bank.NewListBanksUsecaseImpl(st.banks),

		CreateAccount: impl_account.NewCreateAccountUsecaseImpl(st.uow, st.banks, st.accounts, ids, log.Named("account")),
		GetAccount:    impl_account.NewGetAccountUsecaseImpl(st.accounts),
		ListAccounts:  impl_account.NewListAccountsUsecaseImpl(st.banks, st.accounts),

		CreateTransfer: impl_transfer.NewCreateTransferUsecaseImpl(
			st.uow, st.banks, st.accounts, st.transfers, lk.locker, clock, ids, log.Named("transfer"),
		),
		ListTransfers: impl_transfer.NewListTransfersUsecaseImpl(st.accounts, st.transfers),
	}

	checks := []func(ctx context.Context) error{st.ping, lk.ping}
	health := func(ctx context.Context) error {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	a.server = impl_http.NewServer(uc, log.Named("http"), health)

	return a, nil
}

// Close releases adapters in reverse order of opening.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil

	return errors.Join(errs...)
}

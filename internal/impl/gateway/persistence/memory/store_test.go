package impl_memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	impl_memory "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/persistence/memory"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ port_persistence.UnitOfWork = (*impl_memory.Store)(nil)
var _ port_persistence.BankRepository = (*impl_memory.BankRepository)(nil)
var _ port_persistence.AccountRepository = (*impl_memory.AccountRepository)(nil)
var _ port_persistence.TransferRepository = (*impl_memory.TransferRepository)(nil)

func seed(t *testing.T, s *impl_memory.Store, balance string) (*domain_bank.Bank, *domain_account.Account) {
	t.Helper()

	bank := domain_bank.Hydrate(uuid.New(), "Acme")
	require.NoError(t, s.Banks().Create(context.Background(), bank))

	acc := domain_account.Hydrate(uuid.New(), bank.ID(), "checking", decimal.RequireFromString(balance))
	require.NoError(t, s.Accounts().Create(context.Background(), acc))

	return bank, acc
}

func deposit(accountID uuid.UUID, amount string, at time.Time) *domain_transfer.Transfer {
	return domain_transfer.Hydrate(domain_transfer.NewParams{
		TransferID:           uuid.New(),
		Kind:                 domain_transfer.KindDeposit,
		Amount:               decimal.RequireFromString(amount),
		Info:                 "salary",
		DestinationAccountID: accountID,
		Now:                  at,
	})
}

func TestStore_WithinTx_CommitsTogether(t *testing.T) {
	s := impl_memory.NewStore()
	_, acc := seed(t, s, "20.00")
	ctx := context.Background()

	tr := deposit(acc.ID(), "10.00", time.Now())

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Transfers().Create(ctx, tr))

		a, err := s.Accounts().GetByID(ctx, acc.ID())
		require.NoError(t, err)
		a.Credit(decimal.RequireFromString("10.00"))
		require.NoError(t, s.Accounts().UpdateBalance(ctx, a))

		outside, err := s.Accounts().GetByID(context.Background(), acc.ID())
		require.NoError(t, err)
		assert.Equal(t, "20.00", outside.Balance().StringFixed(2), "staged balance leaked")

		_, err = s.Transfers().GetByID(context.Background(), tr.ID())
		assert.ErrorIs(t, err, port_persistence.ErrNotFound)

		inside, err := s.Accounts().GetByID(ctx, acc.ID())
		require.NoError(t, err)
		assert.Equal(t, "30.00", inside.Balance().StringFixed(2))
		return nil
	})
	require.NoError(t, err)

	got, err := s.Accounts().GetByID(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, "30.00", got.Balance().StringFixed(2))

	_, err = s.Transfers().GetByID(ctx, tr.ID())
	assert.NoError(t, err)
}

func TestStore_WithinTx_RollsBackOnError(t *testing.T) {
	s := impl_memory.NewStore()
	_, acc := seed(t, s, "20.00")
	ctx := context.Background()

	boom := errors.New("boom")
	tr := deposit(acc.ID(), "10.00", time.Now())

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Transfers().Create(ctx, tr))

		a, err := s.Accounts().GetByID(ctx, acc.ID())
		require.NoError(t, err)
		a.Credit(decimal.RequireFromString("10.00"))
		require.NoError(t, s.Accounts().UpdateBalance(ctx, a))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Accounts().GetByID(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, "20.00", got.Balance().StringFixed(2))

	list, err := s.Transfers().ListByAccount(ctx, acc.ID())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_WithinTx_NestedJoinsOuter(t *testing.T) {
	s := impl_memory.NewStore()
	_, acc := seed(t, s, "20.00")
	ctx := context.Background()

	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		err := s.WithinTx(ctx, func(ctx context.Context) error {
			return s.Transfers().Create(ctx, deposit(acc.ID(), "1.00", time.Now()))
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.Transfers().ListByAccount(ctx, acc.ID())
	require.NoError(t, err)
	assert.Empty(t, list, "inner unit must not commit on its own")
}

func TestStore_WithinTx_DetectsConcurrentModification(t *testing.T) {
	s := impl_memory.NewStore()
	_, acc := seed(t, s, "20.00")
	ctx := context.Background()

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		a, err := s.Accounts().GetByID(ctx, acc.ID())
		require.NoError(t, err)

		other := a.Clone()
		other.Debit(decimal.RequireFromString("5.00"))
		require.NoError(t, s.Accounts().UpdateBalance(context.Background(), other))

		a.Debit(decimal.RequireFromString("15.00"))
		return s.Accounts().UpdateBalance(ctx, a)
	})
	assert.ErrorIs(t, err, port_persistence.ErrConflict)

	got, err := s.Accounts().GetByID(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, "15.00", got.Balance().StringFixed(2))
}

func TestStore_References(t *testing.T) {
	s := impl_memory.NewStore()
	bank, acc := seed(t, s, "0.00")
	ctx := context.Background()

	orphan := domain_account.Hydrate(uuid.New(), uuid.New(), "orphan", decimal.Zero)
	assert.ErrorIs(t, s.Accounts().Create(ctx, orphan), port_persistence.ErrInvalidReference)

	assert.ErrorIs(t, s.Accounts().Create(ctx, acc), port_persistence.ErrAlreadyExists)
	assert.ErrorIs(t, s.Banks().Create(ctx, bank), port_persistence.ErrAlreadyExists)

	ghost := domain_account.Hydrate(uuid.New(), bank.ID(), "ghost", decimal.Zero)
	assert.ErrorIs(t, s.Accounts().UpdateBalance(ctx, ghost), port_persistence.ErrNotFound)

	assert.ErrorIs(t, s.Transfers().Create(ctx, deposit(uuid.New(), "1.00", time.Now())), port_persistence.ErrInvalidReference)

	tr := deposit(acc.ID(), "1.00", time.Now())
	require.NoError(t, s.Transfers().Create(ctx, tr))
	assert.ErrorIs(t, s.Transfers().Create(ctx, tr), port_persistence.ErrAlreadyExists)

	_, err := s.Banks().GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, port_persistence.ErrNotFound)
}

func TestStore_ListByAccount_NewestFirst(t *testing.T) {
	s := impl_memory.NewStore()
	_, acc := seed(t, s, "0.00")
	_, other := seed(t, s, "0.00")
	ctx := context.Background()

	base := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)

	first := deposit(acc.ID(), "1.00", base)
	tiedEarlier := deposit(acc.ID(), "2.00", base.Add(time.Minute))
	tiedLater := deposit(acc.ID(), "3.00", base.Add(time.Minute))
	unrelated := deposit(other.ID(), "4.00", base.Add(time.Hour))

	for _, tr := range []*domain_transfer.Transfer{first, tiedEarlier, tiedLater, unrelated} {
		require.NoError(t, s.Transfers().Create(ctx, tr))
	}

	list, err := s.Transfers().ListByAccount(ctx, acc.ID())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, tiedLater.ID(), list[0].ID())
	assert.Equal(t, tiedEarlier.ID(), list[1].ID())
	assert.Equal(t, first.ID(), list[2].ID())
}

func TestStore_GetByID_ReturnsCopy(t *testing.T) {
	s := impl_memory.NewStore()
	_, acc := seed(t, s, "20.00")
	ctx := context.Background()

	a, err := s.Accounts().GetByID(ctx, acc.ID())
	require.NoError(t, err)
	a.Credit(decimal.RequireFromString("100.00"))

	b, err := s.Accounts().GetByID(ctx, acc.ID())
	require.NoError(t, err)
	assert.Equal(t, "20.00", b.Balance().StringFixed(2))
}

func TestStore_Listings_NewestFirst(t *testing.T) {
	s := impl_memory.NewStore()
	ctx := context.Background()

	first, a1 := seed(t, s, "1.00")
	second, _ := seed(t, s, "2.00")

	a2 := domain_account.Hydrate(uuid.New(), first.ID(), "savings", decimal.Zero)
	require.NoError(t, s.Accounts().Create(ctx, a2))

	banks, err := s.Banks().List(ctx)
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, second.ID(), banks[0].ID())
	assert.Equal(t, first.ID(), banks[1].ID())

	accounts, err := s.Accounts().ListByBank(ctx, first.ID())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, a2.ID(), accounts[0].ID())
	assert.Equal(t, a1.ID(), accounts[1].ID())

	none, err := s.Accounts().ListByBank(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

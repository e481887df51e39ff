package impl_memory

import (
	"context"
	"fmt"
	"sync"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/google/uuid"
)

type accountRow struct {
	account *domain_account.Account
	version uint64
}

type transferRow struct {
	transfer *domain_transfer.Transfer
	seq      uint64
}

// Store keeps the ledger in process memory. Writes made inside a unit of
// work are staged and become visible all at once on commit; reads outside a
// unit only ever see committed state.
type Store struct {
	mu sync.RWMutex

	banks     map[uuid.UUID]*domain_bank.Bank
	bankOrder []uuid.UUID
	accounts  map[uuid.UUID]*accountRow
	accOrder  []uuid.UUID
	transfers []transferRow
	byID      map[uuid.UUID]int
	seq       uint64
}

func NewStore() *Store {
	return &Store{
		banks:    make(map[uuid.UUID]*domain_bank.Bank),
		accounts: make(map[uuid.UUID]*accountRow),
		byID:     make(map[uuid.UUID]int),
	}
}

func (s *Store) Banks() *BankRepository { return &BankRepository{s: s} }

func (s *Store) Accounts() *AccountRepository { return &AccountRepository{s: s} }

func (s *Store) Transfers() *TransferRepository { return &TransferRepository{s: s} }

type txKey struct{}

// unit holds the writes staged by one WithinTx call.
type unit struct {
	banks     map[uuid.UUID]*domain_bank.Bank
	bankOrder []uuid.UUID
	accounts  map[uuid.UUID]*domain_account.Account
	created   map[uuid.UUID]bool
	accOrder  []uuid.UUID
	reads     map[uuid.UUID]uint64
	transfers []*domain_transfer.Transfer
}

func newUnit() *unit {
	return &unit{
		banks:    make(map[uuid.UUID]*domain_bank.Bank),
		accounts: make(map[uuid.UUID]*domain_account.Account),
		created:  make(map[uuid.UUID]bool),
		reads:    make(map[uuid.UUID]uint64),
	}
}

func unitFrom(ctx context.Context) *unit {
	u, _ := ctx.Value(txKey{}).(*unit)
	return u
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if unitFrom(ctx) != nil {
		return fn(ctx)
	}

	u := newUnit()
	if err := fn(context.WithValue(ctx, txKey{}, u)); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return s.commit(u)
}

// write applies fn to the caller's unit, or to a single-statement unit that
// commits immediately.
func (s *Store) write(ctx context.Context, fn func(u *unit) error) error {
	if u := unitFrom(ctx); u != nil {
		return fn(u)
	}

	u := newUnit()
	if err := fn(u); err != nil {
		return err
	}

	return s.commit(u)
}

func (s *Store) commit(u *unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, version := range u.reads {
		row, ok := s.accounts[id]
		if ok && row.version != version {
			return fmt.Errorf("account %s: %w", id, port_persistence.ErrConflict)
		}
	}

	for id := range u.banks {
		if _, ok := s.banks[id]; ok {
			return fmt.Errorf("bank %s: %w", id, port_persistence.ErrAlreadyExists)
		}
	}

	for id := range u.created {
		if _, ok := s.accounts[id]; ok {
			return fmt.Errorf("account %s: %w", id, port_persistence.ErrAlreadyExists)
		}
	}

	for _, t := range u.transfers {
		if _, ok := s.byID[t.ID()]; ok {
			return fmt.Errorf("transfer %s: %w", t.ID(), port_persistence.ErrAlreadyExists)
		}
	}

	for _, id := range u.bankOrder {
		s.banks[id] = u.banks[id]
	}
	s.bankOrder = append(s.bankOrder, u.bankOrder...)
	s.accOrder = append(s.accOrder, u.accOrder...)

	for id, a := range u.accounts {
		if row, ok := s.accounts[id]; ok {
			row.account = a
			row.version++
			continue
		}
		s.accounts[id] = &accountRow{account: a, version: 1}
	}

	for _, t := range u.transfers {
		s.seq++
		s.byID[t.ID()] = len(s.transfers)
		s.transfers = append(s.transfers, transferRow{transfer: t, seq: s.seq})
	}

	return nil
}

// bankExists and accountExists expect s.mu to be held for reading.
func (s *Store) bankExists(u *unit, id uuid.UUID) bool {
	if _, ok := u.banks[id]; ok {
		return true
	}

	_, ok := s.banks[id]
	return ok
}

func (s *Store) accountExists(u *unit, id uuid.UUID) bool {
	if _, ok := u.accounts[id]; ok {
		return true
	}

	_, ok := s.accounts[id]
	return ok
}

package impl_memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/google/uuid"
)

type BankRepository struct {
	s *Store
}

func (r *BankRepository) Create(ctx context.Context, b *domain_bank.Bank) error {
	return r.s.write(ctx, func(u *unit) error {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()

		if r.s.bankExists(u, b.ID()) {
			return fmt.Errorf("bank %s: %w", b.ID(), port_persistence.ErrAlreadyExists)
		}

		u.banks[b.ID()] = domain_bank.Hydrate(b.ID(), b.Name())
		u.bankOrder = append(u.bankOrder, b.ID())
		return nil
	})
}

func (r *BankRepository) GetByID(ctx context.Context, bankID uuid.UUID) (*domain_bank.Bank, error) {
	if u := unitFrom(ctx); u != nil {
		if b, ok := u.banks[bankID]; ok {
			return domain_bank.Hydrate(b.ID(), b.Name()), nil
		}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.banks[bankID]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	return domain_bank.Hydrate(b.ID(), b.Name()), nil
}

func (r *BankRepository) List(ctx context.Context) ([]*domain_bank.Bank, error) {
	var out []*domain_bank.Bank

	if u := unitFrom(ctx); u != nil {
		for i := len(u.bankOrder) - 1; i >= 0; i-- {
			b := u.banks[u.bankOrder[i]]
			out = append(out, domain_bank.Hydrate(b.ID(), b.Name()))
		}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := len(r.s.bankOrder) - 1; i >= 0; i-- {
		b := r.s.banks[r.s.bankOrder[i]]
		out = append(out, domain_bank.Hydrate(b.ID(), b.Name()))
	}

	return out, nil
}

type AccountRepository struct {
	s *Store
}

func (r *AccountRepository) Create(ctx context.Context, a *domain_account.Account) error {
	return r.s.write(ctx, func(u *unit) error {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()

		if !r.s.bankExists(u, a.BankID()) {
			return fmt.Errorf("bank %s: %w", a.BankID(), port_persistence.ErrInvalidReference)
		}

		if r.s.accountExists(u, a.ID()) {
			return fmt.Errorf("account %s: %w", a.ID(), port_persistence.ErrAlreadyExists)
		}

		u.accounts[a.ID()] = a.Clone()
		u.created[a.ID()] = true
		u.accOrder = append(u.accOrder, a.ID())
		return nil
	})
}

// GetByID records the version it read when called inside a unit of work, so
// the unit fails to commit if the account changed underneath it.
func (r *AccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*domain_account.Account, error) {
	u := unitFrom(ctx)
	if u != nil {
		if a, ok := u.accounts[accountID]; ok {
			return a.Clone(), nil
		}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.accounts[accountID]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	if u != nil {
		if _, seen := u.reads[accountID]; !seen {
			u.reads[accountID] = row.version
		}
	}

	return row.account.Clone(), nil
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, a *domain_account.Account) error {
	return r.s.write(ctx, func(u *unit) error {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()

		if !r.s.accountExists(u, a.ID()) {
			return fmt.Errorf("account %s: %w", a.ID(), port_persistence.ErrNotFound)
		}

		if _, seen := u.reads[a.ID()]; !seen && !u.created[a.ID()] {
			u.reads[a.ID()] = r.s.accounts[a.ID()].version
		}

		u.accounts[a.ID()] = a.Clone()
		return nil
	})
}

// ListByBank reads committed balances, overlaid with the caller's unit when
// there is one.
func (r *AccountRepository) ListByBank(ctx context.Context, bankID uuid.UUID) ([]*domain_account.Account, error) {
	u := unitFrom(ctx)

	var out []*domain_account.Account
	if u != nil {
		for i := len(u.accOrder) - 1; i >= 0; i-- {
			if a := u.accounts[u.accOrder[i]]; a.BankID() == bankID {
				out = append(out, a.Clone())
			}
		}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := len(r.s.accOrder) - 1; i >= 0; i-- {
		id := r.s.accOrder[i]
		a := r.s.accounts[id].account
		if a.BankID() != bankID {
			continue
		}
		if u != nil {
			if staged, ok := u.accounts[id]; ok {
				a = staged
			}
		}
		out = append(out, a.Clone())
	}

	return out, nil
}

type TransferRepository struct {
	s *Store
}

func (r *TransferRepository) Create(ctx context.Context, t *domain_transfer.Transfer) error {
	return r.s.write(ctx, func(u *unit) error {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()

		if _, ok := r.s.byID[t.ID()]; ok {
			return fmt.Errorf("transfer %s: %w", t.ID(), port_persistence.ErrAlreadyExists)
		}
		for _, staged := range u.transfers {
			if staged.ID() == t.ID() {
				return fmt.Errorf("transfer %s: %w", t.ID(), port_persistence.ErrAlreadyExists)
			}
		}

		for _, id := range []uuid.UUID{t.SourceAccountID(), t.DestinationAccountID()} {
			if id != uuid.Nil && !r.s.accountExists(u, id) {
				return fmt.Errorf("account %s: %w", id, port_persistence.ErrInvalidReference)
			}
		}

		for _, id := range []uuid.UUID{t.SourceBankID(), t.DestinationBankID()} {
			if id != uuid.Nil && !r.s.bankExists(u, id) {
				return fmt.Errorf("bank %s: %w", id, port_persistence.ErrInvalidReference)
			}
		}

		u.transfers = append(u.transfers, t)
		return nil
	})
}

func (r *TransferRepository) GetByID(ctx context.Context, transferID uuid.UUID) (*domain_transfer.Transfer, error) {
	if u := unitFrom(ctx); u != nil {
		for _, t := range u.transfers {
			if t.ID() == transferID {
				return t, nil
			}
		}
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.byID[transferID]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	return r.s.transfers[i].transfer, nil
}

// ListByAccount returns the newest transfer first. Transfers are immutable,
// so the stored pointers are shared with the caller.
func (r *TransferRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain_transfer.Transfer, error) {
	r.s.mu.RLock()

	var out []*domain_transfer.Transfer
	for i := len(r.s.transfers) - 1; i >= 0; i-- {
		if t := r.s.transfers[i].transfer; t.Involves(accountID) {
			out = append(out, t)
		}
	}

	r.s.mu.RUnlock()

	if u := unitFrom(ctx); u != nil {
		var staged []*domain_transfer.Transfer
		for i := len(u.transfers) - 1; i >= 0; i-- {
			if t := u.transfers[i]; t.Involves(accountID) {
				staged = append(staged, t)
			}
		}
		out = append(staged, out...)
	}

	slices.SortStableFunc(out, func(a, b *domain_transfer.Transfer) int {
		return cmp.Compare(b.CreatedAt().UnixNano(), a.CreatedAt().UnixNano())
	})

	return out, nil
}

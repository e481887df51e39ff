package impl_transfer

import (
	"context"
	"fmt"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	"github.com/google/uuid"
)

// Executor applies a validated transfer: it appends the transfer record and
// moves the balances. It must run inside the unit of work, and under the
// account locks, that produced the Validated value; it does not re-check
// funds or banks.
type Executor struct {
	transfers port_persistence.TransferRepository
	accounts  port_persistence.AccountRepository
	clock     port_platform.Clock
	ids       port_platform.IDGenerator
}

func NewExecutor(
	transfers port_persistence.TransferRepository,
	accounts port_persistence.AccountRepository,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
) *Executor {
	return &Executor{
		transfers: transfers,
		accounts:  accounts,
		clock:     clock,
		ids:       ids,
	}
}

func (e *Executor) Execute(ctx context.Context, v domain_transfer.Validated) (*domain_transfer.Transfer, error) {
	tr, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID:           e.ids.NewUUID(),
		Kind:                 v.Kind(),
		Amount:               v.Amount(),
		Info:                 v.Info(),
		SourceAccountID:      accountID(v.Source()),
		DestinationAccountID: accountID(v.Destination()),
		SourceBankID:         bankID(v.SourceBank()),
		DestinationBankID:    bankID(v.DestinationBank()),
		Now:                  e.clock.Now(),
	})
	if err != nil {
		return nil, &CommitError{Err: fmt.Errorf("build transfer: %w", err)}
	}

	if err := e.transfers.Create(ctx, tr); err != nil {
		return nil, &CommitError{Err: fmt.Errorf("persist transfer: %w", err)}
	}

	amount := v.Amount()

	switch v.Kind() {
	case domain_transfer.KindDeposit:
		v.Destination().Credit(amount)
		err = e.save(ctx, v.Destination())
	case domain_transfer.KindWithdrawal:
		v.Source().Debit(amount)
		err = e.save(ctx, v.Source())
	case domain_transfer.KindInternalTransfer:
		v.Source().Debit(amount)
		v.Destination().Credit(amount)
		if err = e.save(ctx, v.Source()); err == nil {
			err = e.save(ctx, v.Destination())
		}
	}

	if err != nil {
		return nil, err
	}

	return tr, nil
}

func (e *Executor) save(ctx context.Context, a *domain_account.Account) error {
	if err := e.accounts.UpdateBalance(ctx, a); err != nil {
		return &CommitError{Err: fmt.Errorf("update balance of %s: %w", a.ID(), err)}
	}

	return nil
}

func accountID(a *domain_account.Account) uuid.UUID {
	if a == nil {
		return uuid.Nil
	}

	return a.ID()
}

func bankID(b *domain_bank.Bank) uuid.UUID {
	if b == nil {
		return uuid.Nil
	}

	return b.ID()
}

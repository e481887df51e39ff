package impl_account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateAccountUsecaseImpl struct {
	uow      port_persistence.UnitOfWork
	banks    port_persistence.BankRepository
	accounts port_persistence.AccountRepository
	ids      port_platform.IDGenerator
	log      *zap.Logger
}

func NewCreateAccountUsecaseImpl(
	uow port_persistence.UnitOfWork,
	banks port_persistence.BankRepository,
	accounts port_persistence.AccountRepository,
	ids port_platform.IDGenerator,
	log *zap.Logger,
) *CreateAccountUsecaseImpl {
	if log == nil {
		log = zap.NewNop()
	}

	return &CreateAccountUsecaseImpl{uow: uow, banks: banks, accounts: accounts, ids: ids, log: log}
}

func (u *CreateAccountUsecaseImpl) Execute(ctx context.Context, in port_account.CreateAccountInput) (port_account.AccountOutput, error) {
	bankID, err := uuid.Parse(in.BankID)
	if err != nil {
		return port_account.AccountOutput{}, ErrBankNotFound
	}

	balance := decimal.Zero
	if raw := strings.TrimSpace(in.OpeningBalance); raw != "" {
		if balance, err = decimal.NewFromString(raw); err != nil {
			return port_account.AccountOutput{}, fmt.Errorf("%w: %w", ErrInvalidInput, domain_account.ErrInvalidBalance)
		}
	}

	acc, err := domain_account.New(domain_account.NewParams{
		AccountID: u.ids.NewUUID(),
		BankID:    bankID,
		Name:      in.Name,
		Balance:   balance,
	})
	if err != nil {
		return port_account.AccountOutput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err = u.uow.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := u.banks.GetByID(ctx, bankID); err != nil {
			if errors.Is(err, port_persistence.ErrNotFound) {
				return ErrBankNotFound
			}
			return fmt.Errorf("load bank %s: %w", bankID, err)
		}

		return u.accounts.Create(ctx, acc)
	})
	if err != nil {
		if errors.Is(err, port_persistence.ErrInvalidReference) {
			return port_account.AccountOutput{}, ErrBankNotFound
		}
		return port_account.AccountOutput{}, fmt.Errorf("create account: %w", err)
	}

	u.log.Info("account created",
		zap.String("account_id", acc.ID().String()),
		zap.String("bank_id", bankID.String()),
	)

	return toOutput(acc), nil
}

type GetAccountUsecaseImpl struct {
	accounts port_persistence.AccountRepository
}

func NewGetAccountUsecaseImpl(accounts port_persistence.AccountRepository) *GetAccountUsecaseImpl {
	return &GetAccountUsecaseImpl{accounts: accounts}
}

// Execute reads the committed balance; it never observes a half-applied transfer.
func (u *GetAccountUsecaseImpl) Execute(ctx context.Context, in port_account.GetAccountInput) (port_account.AccountOutput, error) {
	id, err := uuid.Parse(in.AccountID)
	if err != nil {
		return port_account.AccountOutput{}, ErrAccountNotFound
	}

	acc, err := u.accounts.GetByID(ctx, id)
	if errors.Is(err, port_persistence.ErrNotFound) {
		return port_account.AccountOutput{}, ErrAccountNotFound
	}
	if err != nil {
		return port_account.AccountOutput{}, fmt.Errorf("load account %s: %w", id, err)
	}

	return toOutput(acc), nil
}

type ListAccountsUsecaseImpl struct {
	banks    port_persistence.BankRepository
	accounts port_persistence.AccountRepository
}

func NewListAccountsUsecaseImpl(banks port_persistence.BankRepository, accounts port_persistence.AccountRepository) *ListAccountsUsecaseImpl {
	return &ListAccountsUsecaseImpl{banks: banks, accounts: accounts}
}

func (u *ListAccountsUsecaseImpl) Execute(ctx context.Context, in port_account.ListAccountsInput) ([]port_account.AccountOutput, error) {
	bankID, err := uuid.Parse(in.BankID)
	if err != nil {
		return nil, ErrBankNotFound
	}

	if _, err := u.banks.GetByID(ctx, bankID); err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, fmt.Errorf("load bank %s: %w", bankID, err)
	}

	accounts, err := u.accounts.ListByBank(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("list accounts of %s: %w", bankID, err)
	}

	out := make([]port_account.AccountOutput, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toOutput(a))
	}

	return out, nil
}

func toOutput(a *domain_account.Account) port_account.AccountOutput {
	return port_account.AccountOutput{
		AccountID: a.ID().String(),
		BankID:    a.BankID().String(),
		Name:      a.Name(),
		Balance:   a.Balance(),
	}
}

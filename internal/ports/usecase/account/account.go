package port_account

import (
	"context"

	"github.com/shopspring/decimal"
)

type CreateAccountInput struct {
	BankID string
	Name   string
	// OpeningBalance defaults to 0.00 when empty.
	OpeningBalance string
}

type GetAccountInput struct {
	AccountID string
}

type AccountOutput struct {
	AccountID string
	BankID    string
	Name      string
	Balance   decimal.Decimal
}

type CreateAccountUseCase interface {
	Execute(ctx context.Context, input CreateAccountInput) (AccountOutput, error)
}

type GetAccountUseCase interface {
	Execute(ctx context.Context, input GetAccountInput) (AccountOutput, error)
}

type ListAccountsInput struct {
	BankID string
}

type ListAccountsUseCase interface {
	Execute(ctx context.Context, input ListAccountsInput) ([]AccountOutput, error)
}

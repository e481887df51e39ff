package port_bank

import "context"

type CreateBankInput struct {
	Name string
}

type GetBankInput struct {
	BankID string
}

type BankOutput struct {
	BankID string
	Name   string
}

type CreateBankUseCase interface {
	Execute(ctx context.Context, input CreateBankInput) (BankOutput, error)
}

type GetBankUseCase interface {
	Execute(ctx context.Context, input GetBankInput) (BankOutput, error)
}

type ListBanksUseCase interface {
	Execute(ctx context.Context) ([]BankOutput, error)
}

package impl_bank

import (
	"context"
	"errors"
	"fmt"

	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/bank"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateBankUsecaseImpl struct {
	repo port_persistence.BankRepository
	ids  port_platform.IDGenerator
	log  *zap.Logger
}

func NewCreateBankUsecaseImpl(repo port_persistence.BankRepository, ids port_platform.IDGenerator, log *zap.Logger) *CreateBankUsecaseImpl {
	if log == nil {
		log = zap.NewNop()
	}

	return &CreateBankUsecaseImpl{repo: repo, ids: ids, log: log}
}

func (u *CreateBankUsecaseImpl) Execute(ctx context.Context, in port_bank.CreateBankInput) (port_bank.BankOutput, error) {
	b, err := domain_bank.New(domain_bank.NewParams{
		BankID: u.ids.NewUUID(),
		Name:   in.Name,
	})
	if err != nil {
		return port_bank.BankOutput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := u.repo.Create(ctx, b); err != nil {
		return port_bank.BankOutput{}, fmt.Errorf("create bank: %w", err)
	}

	u.log.Info("bank created", zap.String("bank_id", b.ID().String()))

	return toOutput(b), nil
}

type GetBankUsecaseImpl struct {
	repo port_persistence.BankRepository
}

func NewGetBankUsecaseImpl(repo port_persistence.BankRepository) *GetBankUsecaseImpl {
	return &GetBankUsecaseImpl{repo: repo}
}

func (u *GetBankUsecaseImpl) Execute(ctx context.Context, in port_bank.GetBankInput) (port_bank.BankOutput, error) {
	id, err := uuid.Parse(in.BankID)
	if err != nil {
		return port_bank.BankOutput{}, ErrBankNotFound
	}

	b, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, port_persistence.ErrNotFound) {
		return port_bank.BankOutput{}, ErrBankNotFound
	}
	if err != nil {
		return port_bank.BankOutput{}, fmt.Errorf("load bank %s: %w", id, err)
	}

	return toOutput(b), nil
}

func toOutput(b *domain_bank.Bank) port_bank.BankOutput {
	return port_bank.BankOutput{BankID: b.ID().String(), Name: b.Name()}
}

type ListBanksUsecaseImpl struct {
	repo port_persistence.BankRepository
}

func NewListBanksUsecaseImpl(repo port_persistence.BankRepository) *ListBanksUsecaseImpl {
	return &ListBanksUsecaseImpl{repo: repo}
}

func (u *ListBanksUsecaseImpl) Execute(ctx context.Context) ([]port_bank.BankOutput, error) {
	banks, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}

	out := make([]port_bank.BankOutput, 0, len(banks))
	for _, b := range banks {
		out = append(out, toOutput(b))
	}

	return out, nil
}

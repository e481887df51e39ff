package impl_transfer

import (
	"context"
	"errors"
	"fmt"

	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
)

type ListTransfersUsecaseImpl struct {
	accounts  port_persistence.AccountRepository
	transfers port_persistence.TransferRepository
}

func NewListTransfersUsecaseImpl(
	accounts port_persistence.AccountRepository,
	transfers port_persistence.TransferRepository,
) *ListTransfersUsecaseImpl {
	return &ListTransfersUsecaseImpl{accounts: accounts, transfers: transfers}
}

// Execute returns the account's transfers, most recent first.
func (u *ListTransfersUsecaseImpl) Execute(ctx context.Context, in port_transfer.ListTransfersInput) ([]port_transfer.TransferOutput, error) {
	id, ok := parseID(in.AccountID)
	if !ok {
		return nil, ErrAccountNotFound
	}

	if _, err := u.accounts.GetByID(ctx, id); err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("load account %s: %w", id, err)
	}

	list, err := u.transfers.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list transfers of %s: %w", id, err)
	}

	out := make([]port_transfer.TransferOutput, 0, len(list))
	for _, t := range list {
		out = append(out, toOutput(t))
	}

	return out, nil
}

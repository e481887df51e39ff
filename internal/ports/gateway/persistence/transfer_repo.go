package port_persistence

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	"github.com/google/uuid"
)

type TransferRepository interface {
	// Create appends a transfer. Referenced accounts and banks must exist.
	Create(ctx context.Context, t *domain_transfer.Transfer) error
	GetByID(ctx context.Context, transferID uuid.UUID) (*domain_transfer.Transfer, error)
	// ListByAccount returns transfers where the account is source or destination,
	// most recent first; equal timestamps put the later insertion first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain_transfer.Transfer, error)
}

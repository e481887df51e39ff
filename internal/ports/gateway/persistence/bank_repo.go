package port_persistence

import (
	"context"

	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	"github.com/google/uuid"
)

type BankRepository interface {
	Create(ctx context.Context, b *domain_bank.Bank) error
	GetByID(ctx context.Context, bankID uuid.UUID) (*domain_bank.Bank, error)
	// List returns every bank, most recently created first.
	List(ctx context.Context) ([]*domain_bank.Bank, error)
}

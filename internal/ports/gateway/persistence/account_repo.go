package port_persistence

import (
	"context"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/google/uuid"
)

type AccountRepository interface {
	// Create stores a new account. The owning bank must exist.
	Create(ctx context.Context, a *domain_account.Account) error
	// GetByID returns a copy; changing it has no effect until UpdateBalance.
	GetByID(ctx context.Context, accountID uuid.UUID) (*domain_account.Account, error)
	UpdateBalance(ctx context.Context, a *domain_account.Account) error
	// ListByBank returns the bank's accounts, most recently created first.
	ListByBank(ctx context.Context, bankID uuid.UUID) ([]*domain_account.Account, error)
}

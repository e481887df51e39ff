package port_transfer

import (
	"context"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

// CreateTransferInput carries raw identifiers; the use case resolves them.
// Empty strings mean the endpoint was not supplied.
type CreateTransferInput struct {
	Kind                 domain_transfer.Kind
	Amount               string
	Info                 string
	SourceAccountID      string
	DestinationAccountID string
	SourceBankID         string
	DestinationBankID    string
}

type TransferOutput struct {
	TransferID           string
	Kind                 domain_transfer.Kind
	Amount               decimal.Decimal
	Info                 string
	SourceAccountID      string
	DestinationAccountID string
	SourceBankID         string
	DestinationBankID    string
	CreatedAt            time.Time
}

type CreateTransferUseCase interface {
	Execute(ctx context.Context, input CreateTransferInput) (TransferOutput, error)
}

package impl_transfer

import (
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
	"github.com/google/uuid"
)

func toOutput(t *domain_transfer.Transfer) port_transfer.TransferOutput {
	return port_transfer.TransferOutput{
		TransferID:           t.ID().String(),
		Kind:                 t.Kind(),
		Amount:               t.Amount(),
		Info:                 t.Info(),
		SourceAccountID:      optionalID(t.SourceAccountID()),
		DestinationAccountID: optionalID(t.DestinationAccountID()),
		SourceBankID:         optionalID(t.SourceBankID()),
		DestinationBankID:    optionalID(t.DestinationBankID()),
		CreatedAt:            t.CreatedAt(),
	}
}

func optionalID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}

	return id.String()
}

package port_transfer

import "context"

type ListTransfersInput struct {
	AccountID string
}

type ListTransfersUseCase interface {
	Execute(ctx context.Context, input ListTransfersInput) ([]TransferOutput, error)
}

package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_locking "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/locking"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateTransferUsecaseImpl struct {
	uow      port_persistence.UnitOfWork
	banks    port_persistence.BankRepository
	accounts port_persistence.AccountRepository
	locker   port_locking.AccountLocker
	executor *Executor
	log      *zap.Logger
}

func NewCreateTransferUsecaseImpl(
	uow port_persistence.UnitOfWork,
	banks port_persistence.BankRepository,
	accounts port_persistence.AccountRepository,
	transfers port_persistence.TransferRepository,
	locker port_locking.AccountLocker,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	log *zap.Logger,
) *CreateTransferUsecaseImpl {
	if log == nil {
		log = zap.NewNop()
	}

	return &CreateTransferUsecaseImpl{
		uow:      uow,
		banks:    banks,
		accounts: accounts,
		locker:   locker,
		executor: NewExecutor(transfers, accounts, clock, ids),
		log:      log,
	}
}

// Execute validates and applies one transfer. Field rejections come back as
// *domain_transfer.ValidationError with nothing written; storage or locking
// failures come back as *CommitError.
func (u *CreateTransferUsecaseImpl) Execute(ctx context.Context, in port_transfer.CreateTransferInput) (port_transfer.TransferOutput, error) {
	log := u.log.With(
		zap.String("kind", string(in.Kind)),
		zap.String("fingerprint", HashCreateTransferInput(in)),
	)

	d, err := parseDraft(in)
	if err != nil {
		log.Info("transfer rejected", zap.Error(err))
		return port_transfer.TransferOutput{}, err
	}

	keys := d.lockKeys()
	if len(keys) > 0 {
		release, err := u.locker.Lock(ctx, keys...)
		if err != nil {
			log.Error("acquire account locks", zap.Strings("accounts", keys), zap.Error(err))
			return port_transfer.TransferOutput{}, &CommitError{Err: fmt.Errorf("lock accounts: %w", err)}
		}
		defer release()
	}

	var created *domain_transfer.Transfer
	err = u.uow.WithinTx(ctx, func(ctx context.Context) error {
		req, err := u.resolve(ctx, d)
		if err != nil {
			return err
		}

		validated, err := domain_transfer.Validate(req)
		if err != nil {
			return err
		}

		created, err = u.executor.Execute(ctx, validated)
		return err
	})
	if err != nil {
		var verr *domain_transfer.ValidationError
		if errors.As(err, &verr) {
			log.Info("transfer rejected", zap.Error(verr))
			return port_transfer.TransferOutput{}, verr
		}

		log.Error("transfer not committed", zap.Error(err))

		var cerr *CommitError
		if !errors.As(err, &cerr) {
			cerr = &CommitError{Err: err}
		}
		return port_transfer.TransferOutput{}, cerr
	}

	log.Info("transfer committed",
		zap.String("transfer_id", created.ID().String()),
		zap.String("amount", created.Amount().StringFixed(domain_transfer.AmountScale)),
	)

	return toOutput(created), nil
}

// draft is a request that passed the checks needing no stored state.
type draft struct {
	kind   domain_transfer.Kind
	amount decimal.Decimal
	info   string

	source          string
	destination     string
	sourceBank      string
	destinationBank string
}

func parseDraft(in port_transfer.CreateTransferInput) (draft, error) {
	kind := domain_transfer.Kind(strings.TrimSpace(string(in.Kind)))

	var kindErr error
	switch {
	case kind == "":
		kindErr = domain_transfer.Reject(domain_transfer.FieldKind, domain_transfer.ErrMissingField, "This field is required.")
	case !kind.IsValid():
		kindErr = domain_transfer.Reject(domain_transfer.FieldKind, domain_transfer.ErrInvalidKind,
			fmt.Sprintf("%q is not a valid choice.", string(kind)))
	}

	amount, amountErr := domain_transfer.ParseAmount(in.Amount)

	if err := domain_transfer.Merge(kindErr, amountErr, domain_transfer.ValidateInfo(in.Info)); err != nil {
		return draft{}, err
	}

	return draft{
		kind:            kind,
		amount:          amount,
		info:            strings.TrimSpace(in.Info),
		source:          strings.TrimSpace(in.SourceAccountID),
		destination:     strings.TrimSpace(in.DestinationAccountID),
		sourceBank:      strings.TrimSpace(in.SourceBankID),
		destinationBank: strings.TrimSpace(in.DestinationBankID),
	}, nil
}

// lockKeys lists the canonical ids of the accounts the transfer names.
// Malformed ids are skipped; they fail resolution anyway.
func (d draft) lockKeys() []string {
	keys := make([]string, 0, 2)
	for _, raw := range []string{d.source, d.destination} {
		if id, ok := parseID(raw); ok {
			keys = append(keys, id.String())
		}
	}

	return keys
}

package impl_transfer

import (
	"context"
	"errors"
	"fmt"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/google/uuid"
)

// resolve turns the draft's identifiers into entities. Every unknown id is
// reported; storage failures abort with the underlying error.
func (u *CreateTransferUsecaseImpl) resolve(ctx context.Context, d draft) (domain_transfer.Request, error) {
	req := domain_transfer.Request{
		Kind:   d.kind,
		Amount: d.amount,
		Info:   d.info,
	}

	var fields []domain_transfer.FieldError
	var err error

	if req.Source, err = u.lookupAccount(ctx, d.source, domain_transfer.FieldSource, &fields); err != nil {
		return req, err
	}

	if req.Destination, err = u.lookupAccount(ctx, d.destination, domain_transfer.FieldDestination, &fields); err != nil {
		return req, err
	}

	if req.SourceBank, err = u.lookupBank(ctx, d.sourceBank, domain_transfer.FieldSourceBank, &fields); err != nil {
		return req, err
	}

	if req.DestinationBank, err = u.lookupBank(ctx, d.destinationBank, domain_transfer.FieldDestinationBank, &fields); err != nil {
		return req, err
	}

	if len(fields) > 0 {
		return req, &domain_transfer.ValidationError{Errors: fields}
	}

	return req, nil
}

func (u *CreateTransferUsecaseImpl) lookupAccount(
	ctx context.Context,
	raw, field string,
	fields *[]domain_transfer.FieldError,
) (*domain_account.Account, error) {
	if raw == "" {
		return nil, nil
	}

	id, ok := parseID(raw)
	if !ok {
		*fields = append(*fields, notFound(field, raw))
		return nil, nil
	}

	acc, err := u.accounts.GetByID(ctx, id)
	if errors.Is(err, port_persistence.ErrNotFound) {
		*fields = append(*fields, notFound(field, raw))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load account %s: %w", id, err)
	}

	return acc, nil
}

func (u *CreateTransferUsecaseImpl) lookupBank(
	ctx context.Context,
	raw, field string,
	fields *[]domain_transfer.FieldError,
) (*domain_bank.Bank, error) {
	if raw == "" {
		return nil, nil
	}

	id, ok := parseID(raw)
	if !ok {
		*fields = append(*fields, notFound(field, raw))
		return nil, nil
	}

	b, err := u.banks.GetByID(ctx, id)
	if errors.Is(err, port_persistence.ErrNotFound) {
		*fields = append(*fields, notFound(field, raw))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", id, err)
	}

	return b, nil
}

func notFound(field, raw string) domain_transfer.FieldError {
	return domain_transfer.FieldError{
		Field:   field,
		Reason:  domain_transfer.ErrNotFound,
		Message: fmt.Sprintf("Object with id=%s does not exist.", raw),
	}
}

func parseID(raw string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

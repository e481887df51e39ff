package domain_transfer

import (
	"fmt"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	"github.com/shopspring/decimal"
)

// Request is a transfer whose identifiers have already been resolved to entities.
// A nil endpoint means the caller did not supply it.
type Request struct {
	Kind   Kind
	Amount decimal.Decimal
	Info   string

	Source          *domain_account.Account
	Destination     *domain_account.Account
	SourceBank      *domain_bank.Bank
	DestinationBank *domain_bank.Bank
}

// Validated is a Request that passed Validate. Only Validate produces one, so
// holding a Validated is proof the rules were checked.
type Validated struct {
	req Request
}

func (v Validated) Kind() Kind { return v.req.Kind }

func (v Validated) Amount() decimal.Decimal { return v.req.Amount }

func (v Validated) Info() string { return v.req.Info }

func (v Validated) Source() *domain_account.Account { return v.req.Source }

func (v Validated) Destination() *domain_account.Account { return v.req.Destination }

func (v Validated) SourceBank() *domain_bank.Bank { return v.req.SourceBank }

func (v Validated) DestinationBank() *domain_bank.Bank { return v.req.DestinationBank }

// Validate checks the common rules, then the rules of the request's kind.
// It never mutates the accounts it is given.
func Validate(req Request) (Validated, error) {
	if !req.Kind.IsValid() {
		return Validated{}, Reject(FieldKind, ErrInvalidKind, fmt.Sprintf("%q is not a valid choice.", string(req.Kind)))
	}

	if err := ValidateCommon(req.Amount, req.Info); err != nil {
		return Validated{}, err
	}

	var err error
	switch req.Kind {
	case KindDeposit:
		err = validateDeposit(req)
	case KindWithdrawal:
		err = validateWithdrawal(req)
	case KindInternalTransfer:
		err = validateInternalTransfer(req)
	}

	if err != nil {
		return Validated{}, err
	}

	return Validated{req: req}, nil
}

// Deposit creates funds: no balance check, source bank is informational.
func validateDeposit(req Request) error {
	var fields []FieldError

	if req.Destination == nil {
		fields = append(fields, required(FieldDestination))
	}

	if req.Source != nil {
		fields = append(fields, unexpected(FieldSource, req.Kind))
	}

	if req.DestinationBank != nil {
		fields = append(fields, unexpected(FieldDestinationBank, req.Kind))
	}

	return collect(fields)
}

func validateWithdrawal(req Request) error {
	var fields []FieldError

	if req.Source == nil {
		fields = append(fields, required(FieldSource))
	}

	if req.Destination != nil {
		fields = append(fields, unexpected(FieldDestination, req.Kind))
	}

	if req.SourceBank != nil {
		fields = append(fields, unexpected(FieldSourceBank, req.Kind))
	}

	if err := collect(fields); err != nil {
		return err
	}

	if !req.Source.SufficientFunds(req.Amount) {
		return insufficientFunds()
	}

	return nil
}

// The bank check runs before the funds check, so an underfunded cross-bank
// transfer reports the bank mismatch.
func validateInternalTransfer(req Request) error {
	var fields []FieldError

	if req.Source == nil {
		fields = append(fields, required(FieldSource))
	}

	if req.Destination == nil {
		fields = append(fields, required(FieldDestination))
	}

	if req.SourceBank != nil {
		fields = append(fields, unexpected(FieldSourceBank, req.Kind))
	}

	if req.DestinationBank != nil {
		fields = append(fields, unexpected(FieldDestinationBank, req.Kind))
	}

	if err := collect(fields); err != nil {
		return err
	}

	if req.Source.ID() == req.Destination.ID() {
		return Reject(FieldDestination, ErrSameAccount, "Source and destination accounts must differ.")
	}

	if !req.Source.SameBank(req.Destination) {
		return Reject(FieldSource, ErrBankMismatch, "Source bank does not match with destination bank")
	}

	if !req.Source.SufficientFunds(req.Amount) {
		return insufficientFunds()
	}

	return nil
}

func insufficientFunds() error {
	return Reject(FieldSource, ErrInsufficientFunds, "Account does not have enough fund")
}

func required(field string) FieldError {
	return FieldError{Field: field, Reason: ErrMissingField, Message: "This field is required."}
}

func unexpected(field string, kind Kind) FieldError {
	return FieldError{
		Field:   field,
		Reason:  ErrUnexpectedEndpoint,
		Message: fmt.Sprintf("This field is not allowed for a %s transfer.", kind),
	}
}

func collect(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Errors: fields}
}

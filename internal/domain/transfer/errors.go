package domain_transfer

import (
	"errors"
	"strings"
)

const (
	FieldKind            = "kind"
	FieldAmount          = "amount"
	FieldInfo            = "info"
	FieldSource          = "source"
	FieldDestination     = "destination"
	FieldSourceBank      = "source_bank"
	FieldDestinationBank = "destination_bank"
)

var (
	// ErrRejected matches every ValidationError.
	ErrRejected = errors.New("transfer: rejected by validation")

	ErrInvalidKind        = errors.New("transfer: invalid kind")
	ErrInvalidAmount      = errors.New("transfer: invalid amount")
	ErrInvalidInfo        = errors.New("transfer: invalid info")
	ErrMissingField       = errors.New("transfer: required field missing")
	ErrUnexpectedEndpoint = errors.New("transfer: endpoint not allowed for kind")
	ErrNotFound           = errors.New("transfer: referenced object not found")
	ErrSameAccount        = errors.New("transfer: source equals destination")
	ErrBankMismatch       = errors.New("transfer: source bank does not match destination bank")
	ErrInsufficientFunds  = errors.New("transfer: insufficient funds")

	ErrInvalidTransferID = errors.New("transfer: invalid transfer_id")
	ErrInvalidEndpoints  = errors.New("transfer: endpoints do not match kind")
)

// FieldError attributes one rejection to a request field.
type FieldError struct {
	Field   string
	Reason  error
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e FieldError) Unwrap() error { return e.Reason }

// ValidationError carries every field rejection found at one validation stage.
// It never accompanies a state change.
type ValidationError struct {
	Errors []FieldError
}

func Reject(field string, reason error, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Reason: reason, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Error())
	}

	return "transfer rejected: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrRejected {
		return true
	}

	for _, fe := range e.Errors {
		if errors.Is(fe.Reason, target) {
			return true
		}
	}

	return false
}

// Fields groups messages by field name, in the order they were reported.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}

	return out
}

// Merge joins the field errors of several validation results. Non-validation
// errors are not expected here and are returned as is.
func Merge(errs ...error) error {
	var fields []FieldError

	for _, err := range errs {
		if err == nil {
			continue
		}

		verr, ok := err.(*ValidationError)
		if !ok {
			return err
		}

		fields = append(fields, verr.Errors...)
	}

	if len(fields) == 0 {
		return nil
	}

	return &ValidationError{Errors: fields}
}

package domain_account

import "errors"

var (
	ErrInvalidAccountID = errors.New("account: invalid account_id")
	ErrInvalidBankID    = errors.New("account: invalid bank_id")
	ErrMissingName      = errors.New("account: name is required")
	ErrNameTooLong      = errors.New("account: name must be at most 150 characters")
	ErrNegativeBalance  = errors.New("account: opening balance must be >= 0")
	ErrBalancePrecision = errors.New("account: balance must have at most 2 decimal places")
	ErrInvalidBalance   = errors.New("account: balance must be a number")
)

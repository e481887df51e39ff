package domain_bank

import "errors"

var (
	ErrInvalidBankID = errors.New("bank: invalid bank_id")
	ErrMissingName   = errors.New("bank: name is required")
	ErrNameTooLong   = errors.New("bank: name must be at most 150 characters")
)

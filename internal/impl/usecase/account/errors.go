package impl_account

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input data")
	ErrAccountNotFound = errors.New("account not found")
	ErrBankNotFound    = errors.New("bank not found")
)

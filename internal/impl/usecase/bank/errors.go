package impl_bank

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input data")
	ErrBankNotFound = errors.New("bank not found")
)

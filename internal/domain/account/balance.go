package domain_account

import "github.com/shopspring/decimal"

// SufficientFunds reports whether the balance left after taking amount stays strictly above zero.
// Draining an account to exactly 0.00 is rejected.
func (a *Account) SufficientFunds(amount decimal.Decimal) bool {
	return a.balance.Sub(amount).GreaterThan(decimal.Zero)
}

// SameBank reports whether both accounts belong to the same bank.
func (a *Account) SameBank(other *Account) bool {
	return other != nil && a.bankID == other.bankID
}

// Credit adds amount to the balance. There is no upper bound.
func (a *Account) Credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Debit removes amount from the balance without checking it. Callers must have
// confirmed SufficientFunds inside the same unit of work.
func (a *Account) Debit(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}

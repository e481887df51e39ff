package domain_account

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxNameLength = 150

	// BalanceScale is the number of fractional digits carried by balances and amounts.
	BalanceScale = 2
)

type Account struct {
	id      uuid.UUID
	bankID  uuid.UUID
	name    string
	balance decimal.Decimal
}

type NewParams struct {
	AccountID uuid.UUID
	BankID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
}

func New(p NewParams) (*Account, error) {
	if p.AccountID == uuid.Nil {
		return nil, ErrInvalidAccountID
	}

	if p.BankID == uuid.Nil {
		return nil, ErrInvalidBankID
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	if p.Balance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	if p.Balance.Exponent() < -BalanceScale {
		return nil, ErrBalancePrecision
	}

	return &Account{
		id:      p.AccountID,
		bankID:  p.BankID,
		name:    name,
		balance: p.Balance,
	}, nil
}

// Hydrate rebuilds an account from persisted state without re-running creation rules.
func Hydrate(id, bankID uuid.UUID, name string, balance decimal.Decimal) *Account {
	return &Account{id: id, bankID: bankID, name: name, balance: balance}
}

// Clone returns an independent copy; stores hand out clones so callers never share balance state.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}

func (a *Account) ID() uuid.UUID { return a.id }

func (a *Account) BankID() uuid.UUID { return a.bankID }

func (a *Account) Name() string { return a.name }

func (a *Account) Balance() decimal.Decimal { return a.balance }

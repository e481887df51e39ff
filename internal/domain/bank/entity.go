package domain_bank

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxNameLength = 150

type Bank struct {
	id   uuid.UUID
	name string
}

type NewParams struct {
	BankID uuid.UUID
	Name   string
}

func New(p NewParams) (*Bank, error) {
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

	return &Bank{id: p.BankID, name: name}, nil
}

// Hydrate rebuilds a bank from persisted state without re-running creation rules.
func Hydrate(id uuid.UUID, name string) *Bank {
	return &Bank{id: id, name: name}
}

func (b *Bank) ID() uuid.UUID { return b.id }

func (b *Bank) Name() string { return b.name }

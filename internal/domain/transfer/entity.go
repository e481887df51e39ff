package domain_transfer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is immutable once built. Corrections are new, compensating transfers.
type Transfer struct {
	id   uuid.UUID
	kind Kind

	amount decimal.Decimal
	info   string

	sourceAccountID      uuid.UUID
	destinationAccountID uuid.UUID
	sourceBankID         uuid.UUID
	destinationBankID    uuid.UUID

	createdAt time.Time
}

type NewParams struct {
	TransferID           uuid.UUID
	Kind                 Kind
	Amount               decimal.Decimal
	Info                 string
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	SourceBankID         uuid.UUID
	DestinationBankID    uuid.UUID
	Now                  time.Time
}

func New(p NewParams) (*Transfer, error) {
	if p.TransferID == uuid.Nil {
		return nil, ErrInvalidTransferID
	}

	if !p.Kind.IsValid() {
		return nil, ErrInvalidKind
	}

	if err := ValidateCommon(p.Amount, p.Info); err != nil {
		return nil, err
	}

	if !endpointsMatchKind(p) {
		return nil, ErrInvalidEndpoints
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	return Hydrate(p), nil
}

// Hydrate rebuilds a transfer from persisted state without re-running creation rules.
func Hydrate(p NewParams) *Transfer {
	return &Transfer{
		id:                   p.TransferID,
		kind:                 p.Kind,
		amount:               p.Amount,
		info:                 strings.TrimSpace(p.Info),
		sourceAccountID:      p.SourceAccountID,
		destinationAccountID: p.DestinationAccountID,
		sourceBankID:         p.SourceBankID,
		destinationBankID:    p.DestinationBankID,
		createdAt:            p.Now,
	}
}

func endpointsMatchKind(p NewParams) bool {
	hasSrc := p.SourceAccountID != uuid.Nil
	hasDst := p.DestinationAccountID != uuid.Nil

	switch p.Kind {
	case KindDeposit:
		return !hasSrc && hasDst && p.DestinationBankID == uuid.Nil
	case KindWithdrawal:
		return hasSrc && !hasDst && p.SourceBankID == uuid.Nil
	case KindInternalTransfer:
		return hasSrc && hasDst && p.SourceBankID == uuid.Nil && p.DestinationBankID == uuid.Nil
	}

	return false
}

// Involves reports whether the account is one of the transfer's endpoints.
func (t *Transfer) Involves(accountID uuid.UUID) bool {
	return accountID != uuid.Nil && (t.sourceAccountID == accountID || t.destinationAccountID == accountID)
}

func (t *Transfer) ID() uuid.UUID { return t.id }

func (t *Transfer) Kind() Kind { return t.kind }

func (t *Transfer) Amount() decimal.Decimal { return t.amount }

func (t *Transfer) Info() string { return t.info }

func (t *Transfer) SourceAccountID() uuid.UUID { return t.sourceAccountID }

func (t *Transfer) DestinationAccountID() uuid.UUID { return t.destinationAccountID }

func (t *Transfer) SourceBankID() uuid.UUID { return t.sourceBankID }

func (t *Transfer) DestinationBankID() uuid.UUID { return t.destinationBankID }

func (t *Transfer) CreatedAt() time.Time { return t.createdAt }

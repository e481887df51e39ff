package impl_http

import (
	"bytes"
	"encoding/json"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
	port_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/bank"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
)

// amount accepts a JSON number or string and keeps its text for the use case
// to parse. Any other JSON value is kept verbatim and rejected downstream.
type amount string

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = amount(s)
		return nil
	}

	*a = amount(data)
	return nil
}

type bankRequest struct {
	Name string `json:"name"`
}

type bankResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toBankResponse(b port_bank.BankOutput) bankResponse {
	return bankResponse{ID: b.BankID, Name: b.Name}
}

type accountRequest struct {
	Name    string `json:"name"`
	Balance amount `json:"balance"`
}

type accountResponse struct {
	ID      string `json:"id"`
	BankID  string `json:"bank_id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

func toAccountResponse(a port_account.AccountOutput) accountResponse {
	return accountResponse{
		ID:      a.AccountID,
		BankID:  a.BankID,
		Name:    a.Name,
		Balance: a.Balance.StringFixed(domain_account.BalanceScale),
	}
}

// transferRequest is shared by the three movement endpoints; each one fixes
// the kind and the path account, and passes every other field through so
// the ledger can reject endpoints the kind does not allow.
type transferRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	SrcBank     string `json:"src_bank"`
	DstBank     string `json:"dst_bank"`
	Amount      amount `json:"amount"`
	Info        string `json:"info"`
}

func (req transferRequest) input(kind domain_transfer.Kind) port_transfer.CreateTransferInput {
	return port_transfer.CreateTransferInput{
		Kind:                 kind,
		Amount:               string(req.Amount),
		Info:                 req.Info,
		SourceAccountID:      req.Source,
		DestinationAccountID: req.Destination,
		SourceBankID:         req.SrcBank,
		DestinationBankID:    req.DstBank,
	}
}

type transferResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Info        string    `json:"info"`
	Source      string    `json:"source,omitempty"`
	Destination string    `json:"destination,omitempty"`
	SrcBank     string    `json:"src_bank,omitempty"`
	DstBank     string    `json:"dst_bank,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransferResponse(t port_transfer.TransferOutput) transferResponse {
	return transferResponse{
		ID:          t.TransferID,
		Kind:        string(t.Kind),
		Amount:      t.Amount.StringFixed(domain_transfer.AmountScale),
		Info:        t.Info,
		Source:      t.SourceAccountID,
		Destination: t.DestinationAccountID,
		SrcBank:     t.SourceBankID,
		DstBank:     t.DestinationBankID,
		CreatedAt:   t.CreatedAt,
	}
}

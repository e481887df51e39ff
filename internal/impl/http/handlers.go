package impl_http

import (
	"net/http"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
	port_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/bank"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
	"github.com/go-chi/chi/v5"
)

func (s *Server) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := s.uc.ListBanks.Execute(r.Context())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	out := make([]bankResponse, 0, len(banks))
	for _, b := range banks {
		out = append(out, toBankResponse(b))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createBank(w http.ResponseWriter, r *http.Request) {
	var req bankRequest
	if !s.decode(w, r, &req) {
		return
	}

	b, err := s.uc.CreateBank.Execute(r.Context(), port_bank.CreateBankInput{Name: req.Name})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBankResponse(b))
}

func (s *Server) getBank(w http.ResponseWriter, r *http.Request) {
	b, err := s.uc.GetBank.Execute(r.Context(), port_bank.GetBankInput{BankID: chi.URLParam(r, "bankID")})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBankResponse(b))
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.uc.ListAccounts.Execute(r.Context(), port_account.ListAccountsInput{BankID: chi.URLParam(r, "bankID")})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !s.decode(w, r, &req) {
		return
	}

	a, err := s.uc.CreateAccount.Execute(r.Context(), port_account.CreateAccountInput{
		BankID:         chi.URLParam(r, "bankID"),
		Name:           req.Name,
		OpeningBalance: string(req.Balance),
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(a))
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	a, err := s.uc.GetAccount.Execute(r.Context(), port_account.GetAccountInput{AccountID: chi.URLParam(r, "accountID")})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(a))
}

func (s *Server) listTransfers(w http.ResponseWriter, r *http.Request) {
	list, err := s.uc.ListTransfers.Execute(r.Context(), port_transfer.ListTransfersInput{AccountID: chi.URLParam(r, "accountID")})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	out := make([]transferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransferResponse(t))
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addFunds(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !s.decode(w, r, &req) {
		return
	}

	req.Destination = chi.URLParam(r, "accountID")
	s.createTransfer(w, r, req.input(domain_transfer.KindDeposit))
}

func (s *Server) retireFunds(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !s.decode(w, r, &req) {
		return
	}

	req.Source = chi.URLParam(r, "accountID")
	s.createTransfer(w, r, req.input(domain_transfer.KindWithdrawal))
}

func (s *Server) internalTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !s.decode(w, r, &req) {
		return
	}

	s.createTransfer(w, r, req.input(domain_transfer.KindInternalTransfer))
}

func (s *Server) createTransfer(w http.ResponseWriter, r *http.Request, in port_transfer.CreateTransferInput) {
	out, err := s.uc.CreateTransfer.Execute(r.Context(), in)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransferResponse(out))
}

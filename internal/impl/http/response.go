package impl_http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	impl_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/account"
	impl_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/bank"
	impl_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/transfer"
	"go.uber.org/zap"
)

// Request field names differ from the domain's for the two bank endpoints.
var wireField = map[string]string{
	domain_transfer.FieldSourceBank:      "src_bank",
	domain_transfer.FieldDestinationBank: "dst_bank",
}

type fieldErrors map[string][]string

type errorsBody struct {
	Errors fieldErrors `json:"errors"`
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFieldErrors(w http.ResponseWriter, fields fieldErrors) {
	writeJSON(w, http.StatusBadRequest, errorsBody{Errors: fields})
}

// inputErrors maps bank and account construction failures onto request fields.
var inputErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain_bank.ErrMissingName, "name", "This field may not be blank."},
	{domain_bank.ErrNameTooLong, "name", "Ensure this field has no more than 150 characters."},
	{domain_account.ErrMissingName, "name", "This field may not be blank."},
	{domain_account.ErrNameTooLong, "name", "Ensure this field has no more than 150 characters."},
	{domain_account.ErrNegativeBalance, "balance", "Ensure this value is greater than or equal to 0."},
	{domain_account.ErrBalancePrecision, "balance", "Ensure that there are no more than 2 decimal places."},
	{domain_account.ErrInvalidBalance, "balance", "A valid number is required."},
}

// writeErr renders a use-case error. Rejections and not-found results are
// the caller's fault; anything else is logged and reported as a 500.
func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain_transfer.ValidationError
	if errors.As(err, &verr) {
		fields := fieldErrors{}
		for name, msgs := range verr.Fields() {
			if wire, ok := wireField[name]; ok {
				name = wire
			}
			fields[name] = append(fields[name], msgs...)
		}
		writeFieldErrors(w, fields)
		return
	}

	if errors.Is(err, impl_bank.ErrInvalidInput) || errors.Is(err, impl_account.ErrInvalidInput) {
		fields := fieldErrors{}
		for _, ie := range inputErrors {
			if errors.Is(err, ie.err) {
				fields[ie.field] = append(fields[ie.field], ie.message)
			}
		}
		if len(fields) == 0 {
			fields["non_field_errors"] = []string{err.Error()}
		}
		writeFieldErrors(w, fields)
		return
	}

	switch {
	case errors.Is(err, impl_bank.ErrBankNotFound),
		errors.Is(err, impl_account.ErrBankNotFound),
		errors.Is(err, impl_account.ErrAccountNotFound),
		errors.Is(err, impl_transfer.ErrAccountNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found."})
		return
	}

	s.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	if errors.Is(err, impl_transfer.ErrCommitFailed) {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Transfer could not be committed. It had no effect and may be retried."})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error."})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	// An empty body decodes as an empty object so missing fields are reported.
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeFieldErrors(w, fieldErrors{"non_field_errors": {"Malformed JSON body."}})
		return false
	}

	return true
}

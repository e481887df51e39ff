package domain_transfer_test

import (
	"errors"
	"strings"
	"testing"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	validTests := []struct {
		raw  string
		want string
	}{
		{raw: "1", want: "1.00"},
		{raw: "1.00", want: "1.00"},
		{raw: " 10.5 ", want: "10.50"},
		{raw: "9999999999999999.99", want: "9999999999999999.99"},
	}

	for _, tt := range validTests {
		t.Run("accepts "+tt.raw, func(t *testing.T) {
			got, err := domain_transfer.ParseAmount(tt.raw)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got.StringFixed(2) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.StringFixed(2))
			}
		})
	}

	errorTests := []struct {
		name      string
		raw       string
		wantError error
	}{
		{name: "empty", raw: "", wantError: domain_transfer.ErrMissingField},
		{name: "not a number", raw: "ten", wantError: domain_transfer.ErrInvalidAmount},
		{name: "below minimum", raw: "0.99", wantError: domain_transfer.ErrInvalidAmount},
		{name: "zero", raw: "0", wantError: domain_transfer.ErrInvalidAmount},
		{name: "negative", raw: "-5", wantError: domain_transfer.ErrInvalidAmount},
		{name: "three decimals", raw: "1.005", wantError: domain_transfer.ErrInvalidAmount},
		{name: "too many whole digits", raw: "10000000000000000", wantError: domain_transfer.ErrInvalidAmount},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain_transfer.ParseAmount(tt.raw)
			if !errors.Is(err, tt.wantError) {
				t.Fatalf("expected error %v, got %v", tt.wantError, err)
			}

			var verr *domain_transfer.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}

			if verr.Errors[0].Field != domain_transfer.FieldAmount {
				t.Fatalf("expected error on field amount, got %s", verr.Errors[0].Field)
			}
		})
	}
}

func TestValidateCommon(t *testing.T) {
	t.Run("reports amount and info together", func(t *testing.T) {
		err := domain_transfer.ValidateCommon(decimal.RequireFromString("0.5"), strings.Repeat("i", domain_transfer.InfoMaxLength+1))

		var verr *domain_transfer.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}

		fields := verr.Fields()
		if len(fields[domain_transfer.FieldAmount]) != 1 || len(fields[domain_transfer.FieldInfo]) != 1 {
			t.Fatalf("expected one error on amount and one on info, got %v", fields)
		}

		if !errors.Is(err, domain_transfer.ErrInvalidInfo) {
			t.Errorf("expected ErrInvalidInfo to match, got %v", err)
		}
	})

	t.Run("accepts info at maximum length", func(t *testing.T) {
		if err := domain_transfer.ValidateCommon(decimal.NewFromInt(5), strings.Repeat("i", domain_transfer.InfoMaxLength)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

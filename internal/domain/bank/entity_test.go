package domain_bank_test

import (
	"errors"
	"strings"
	"testing"

	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := uuid.New()

	t.Run("creates bank with trimmed name", func(t *testing.T) {
		b, err := domain_bank.New(domain_bank.NewParams{BankID: id, Name: "  First Bank "})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if b.ID() != id {
			t.Errorf("expected bank id %v, got %v", id, b.ID())
		}

		if b.Name() != "First Bank" {
			t.Errorf("expected name 'First Bank', got %q", b.Name())
		}
	})

	errorTests := []struct {
		name      string
		params    domain_bank.NewParams
		wantError error
	}{
		{
			name:      "returns error when bank id is nil",
			params:    domain_bank.NewParams{BankID: uuid.Nil, Name: "First Bank"},
			wantError: domain_bank.ErrInvalidBankID,
		},
		{
			name:      "returns error when name is blank",
			params:    domain_bank.NewParams{BankID: id, Name: "   "},
			wantError: domain_bank.ErrMissingName,
		},
		{
			name:      "returns error when name is too long",
			params:    domain_bank.NewParams{BankID: id, Name: strings.Repeat("b", domain_bank.MaxNameLength+1)},
			wantError: domain_bank.ErrNameTooLong,
		},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain_bank.New(tt.params)
			if !errors.Is(err, tt.wantError) {
				t.Fatalf("expected error %v, got %v", tt.wantError, err)
			}
		})
	}
}

package impl_account_test

import (
	"context"
	"errors"
	"testing"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	impl_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/account"
	gwmocks "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/mocks"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCreateAccount(t *testing.T) {
	bank := domain_bank.Hydrate(uuid.New(), "Acme")

	tests := []struct {
		name        string
		balance     string
		wantBalance string
		wantErr     error
	}{
		{name: "defaults to zero", balance: "", wantBalance: "0.00"},
		{name: "opening balance", balance: "20.5", wantBalance: "20.50"},
		{name: "negative", balance: "-1", wantErr: domain_account.ErrNegativeBalance},
		{name: "three decimals", balance: "1.005", wantErr: domain_account.ErrBalancePrecision},
		{name: "not a number", balance: "ten", wantErr: domain_account.ErrInvalidBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := gwmocks.NewMockUnitOfWork(ctrl)
			banks := gwmocks.NewMockBankRepository(ctrl)
			accounts := gwmocks.NewMockAccountRepository(ctrl)
			ids := gwmocks.NewMockIDGenerator(ctrl)

			if tt.wantErr == nil {
				ids.EXPECT().NewUUID().Return(uuid.New())
				uow.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				banks.EXPECT().GetByID(gomock.Any(), bank.ID()).Return(bank, nil)
				accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			} else {
				ids.EXPECT().NewUUID().Return(uuid.New()).AnyTimes()
				uow.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Times(0)
			}

			svc := impl_account.NewCreateAccountUsecaseImpl(uow, banks, accounts, ids, nil)
			out, err := svc.Execute(context.Background(), port_account.CreateAccountInput{
				BankID:         bank.ID().String(),
				Name:           "checking",
				OpeningBalance: tt.balance,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, impl_account.ErrInvalidInput) {
					t.Fatalf("expected %v wrapped in ErrInvalidInput, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if out.Balance.StringFixed(2) != tt.wantBalance {
				t.Fatalf("expected balance %s, got %s", tt.wantBalance, out.Balance.StringFixed(2))
			}
			if out.BankID != bank.ID().String() {
				t.Fatalf("expected bank %s, got %s", bank.ID(), out.BankID)
			}
		})
	}
}

func TestCreateAccount_UnknownBank(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := gwmocks.NewMockUnitOfWork(ctrl)
	banks := gwmocks.NewMockBankRepository(ctrl)
	accounts := gwmocks.NewMockAccountRepository(ctrl)
	ids := gwmocks.NewMockIDGenerator(ctrl)

	bankID := uuid.New()

	ids.EXPECT().NewUUID().Return(uuid.New())
	uow.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	banks.EXPECT().GetByID(gomock.Any(), bankID).Return(nil, port_persistence.ErrNotFound)
	accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := impl_account.NewCreateAccountUsecaseImpl(uow, banks, accounts, ids, nil)
	_, err := svc.Execute(context.Background(), port_account.CreateAccountInput{BankID: bankID.String(), Name: "checking"})
	if !errors.Is(err, impl_account.ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}

func TestGetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := gwmocks.NewMockAccountRepository(ctrl)
	svc := impl_account.NewGetAccountUsecaseImpl(accounts)

	acc := domain_account.Hydrate(uuid.New(), uuid.New(), "checking", decimal.RequireFromString("12.30"))
	accounts.EXPECT().GetByID(gomock.Any(), acc.ID()).Return(acc, nil)
	accounts.EXPECT().GetByID(gomock.Any(), gomock.Not(acc.ID())).Return(nil, port_persistence.ErrNotFound)

	out, err := svc.Execute(context.Background(), port_account.GetAccountInput{AccountID: acc.ID().String()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Balance.StringFixed(2) != "12.30" {
		t.Fatalf("expected balance 12.30, got %s", out.Balance.StringFixed(2))
	}

	if _, err := svc.Execute(context.Background(), port_account.GetAccountInput{AccountID: uuid.NewString()}); !errors.Is(err, impl_account.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	banks := gwmocks.NewMockBankRepository(ctrl)
	accounts := gwmocks.NewMockAccountRepository(ctrl)
	svc := impl_account.NewListAccountsUsecaseImpl(banks, accounts)

	bank := domain_bank.Hydrate(uuid.New(), "Acme")
	acc := domain_account.Hydrate(uuid.New(), bank.ID(), "checking", decimal.RequireFromString("20.00"))

	banks.EXPECT().GetByID(gomock.Any(), bank.ID()).Return(bank, nil)
	accounts.EXPECT().ListByBank(gomock.Any(), bank.ID()).Return([]*domain_account.Account{acc}, nil)

	out, err := svc.Execute(context.Background(), port_account.ListAccountsInput{BankID: bank.ID().String()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 1 || out[0].AccountID != acc.ID().String() {
		t.Fatalf("expected one account %s, got %+v", acc.ID(), out)
	}

	missing := uuid.New()
	banks.EXPECT().GetByID(gomock.Any(), missing).Return(nil, port_persistence.ErrNotFound)

	if _, err := svc.Execute(context.Background(), port_account.ListAccountsInput{BankID: missing.String()}); !errors.Is(err, impl_account.ErrBankNotFound) {
		t.Fatalf("expected ErrBankNotFound, got %v", err)
	}
}

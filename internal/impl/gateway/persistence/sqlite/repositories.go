package impl_sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_bank "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/bank"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BankRepository struct {
	s *Store
}

func (r *BankRepository) Create(ctx context.Context, b *domain_bank.Bank) error {
	_, err := r.s.q(ctx).ExecContext(ctx,
		`INSERT INTO banks (id, name) VALUES (?, ?)`,
		b.ID().String(), b.Name(),
	)
	if err != nil {
		return fmt.Errorf("insert bank: %w", mapError(err))
	}

	return nil
}

func (r *BankRepository) GetByID(ctx context.Context, bankID uuid.UUID) (*domain_bank.Bank, error) {
	var name string
	err := r.s.q(ctx).QueryRowContext(ctx, `SELECT name FROM banks WHERE id = ?`, bankID.String()).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port_persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select bank: %w", err)
	}

	return domain_bank.Hydrate(bankID, name), nil
}

func (r *BankRepository) List(ctx context.Context) ([]*domain_bank.Bank, error) {
	rows, err := r.s.q(ctx).QueryContext(ctx, `SELECT id, name FROM banks ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("select banks: %w", err)
	}
	defer rows.Close()

	var out []*domain_bank.Bank
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}

		bid, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("bank: bad id %q: %w", id, err)
		}

		out = append(out, domain_bank.Hydrate(bid, name))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select banks: %w", err)
	}

	return out, nil
}

type AccountRepository struct {
	s *Store
}

func (r *AccountRepository) Create(ctx context.Context, a *domain_account.Account) error {
	_, err := r.s.q(ctx).ExecContext(ctx,
		`INSERT INTO accounts (id, bank_id, name, balance) VALUES (?, ?, ?, ?)`,
		a.ID().String(), a.BankID().String(), a.Name(), a.Balance().StringFixed(domain_account.BalanceScale),
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", mapError(err))
	}

	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*domain_account.Account, error) {
	var (
		bankID  string
		name    string
		balance string
	)

	err := r.s.q(ctx).QueryRowContext(ctx,
		`SELECT bank_id, name, balance FROM accounts WHERE id = ?`,
		accountID.String(),
	).Scan(&bankID, &name, &balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port_persistence.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}

	return hydrateAccount(accountID.String(), bankID, name, balance)
}

func (r *AccountRepository) ListByBank(ctx context.Context, bankID uuid.UUID) ([]*domain_account.Account, error) {
	rows, err := r.s.q(ctx).QueryContext(ctx,
		`SELECT id, bank_id, name, balance FROM accounts WHERE bank_id = ? ORDER BY rowid DESC`,
		bankID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	defer rows.Close()

	var out []*domain_account.Account
	for rows.Next() {
		var id, bid, name, balance string
		if err := rows.Scan(&id, &bid, &name, &balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		a, err := hydrateAccount(id, bid, name, balance)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}

	return out, nil
}

func hydrateAccount(id, bankID, name, balance string) (*domain_account.Account, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("account: bad id %q: %w", id, err)
	}

	bid, err := uuid.Parse(bankID)
	if err != nil {
		return nil, fmt.Errorf("account %s: bad bank_id %q: %w", id, bankID, err)
	}

	bal, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("account %s: bad balance %q: %w", id, balance, err)
	}

	return domain_account.Hydrate(aid, bid, name, bal), nil
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, a *domain_account.Account) error {
	res, err := r.s.q(ctx).ExecContext(ctx,
		`UPDATE accounts SET balance = ? WHERE id = ?`,
		a.Balance().StringFixed(domain_account.BalanceScale), a.ID().String(),
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if n == 0 {
		return port_persistence.ErrNotFound
	}

	return nil
}

type TransferRepository struct {
	s *Store
}

const transferColumns = `id, kind, amount, info, source_account_id, destination_account_id,
	source_bank_id, destination_bank_id, created_at`

func (r *TransferRepository) Create(ctx context.Context, t *domain_transfer.Transfer) error {
	_, err := r.s.q(ctx).ExecContext(ctx,
		`INSERT INTO transfers (`+transferColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID().String(),
		string(t.Kind()),
		t.Amount().StringFixed(domain_transfer.AmountScale),
		t.Info(),
		nullableID(t.SourceAccountID()),
		nullableID(t.DestinationAccountID()),
		nullableID(t.SourceBankID()),
		nullableID(t.DestinationBankID()),
		t.CreatedAt().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", mapError(err))
	}

	return nil
}

func (r *TransferRepository) GetByID(ctx context.Context, transferID uuid.UUID) (*domain_transfer.Transfer, error) {
	row := r.s.q(ctx).QueryRowContext(ctx,
		`SELECT `+transferColumns+` FROM transfers WHERE id = ?`,
		transferID.String(),
	)

	t, err := scanTransfer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port_persistence.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TransferRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain_transfer.Transfer, error) {
	id := accountID.String()

	rows, err := r.s.q(ctx).QueryContext(ctx,
		`SELECT `+transferColumns+` FROM transfers
		WHERE source_account_id = ? OR destination_account_id = ?
		ORDER BY created_at DESC, seq DESC`,
		id, id,
	)
	if err != nil {
		return nil, fmt.Errorf("select transfers: %w", err)
	}
	defer rows.Close()

	var out []*domain_transfer.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select transfers: %w", err)
	}

	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransfer(s scanner) (*domain_transfer.Transfer, error) {
	var (
		id, kind, amount, info   string
		src, dst, srcBank, dstBk sql.NullString
		createdAt                int64
	)

	if err := s.Scan(&id, &kind, &amount, &info, &src, &dst, &srcBank, &dstBk, &createdAt); err != nil {
		return nil, err
	}

	p := domain_transfer.NewParams{
		Kind: domain_transfer.Kind(kind),
		Info: info,
		Now:  time.Unix(0, createdAt).UTC(),
	}

	var err error
	if p.TransferID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("transfer: bad id %q: %w", id, err)
	}

	if p.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("transfer %s: bad amount %q: %w", id, amount, err)
	}

	for _, f := range []struct {
		col sql.NullString
		dst *uuid.UUID
	}{
		{src, &p.SourceAccountID},
		{dst, &p.DestinationAccountID},
		{srcBank, &p.SourceBankID},
		{dstBk, &p.DestinationBankID},
	} {
		if !f.col.Valid {
			continue
		}
		if *f.dst, err = uuid.Parse(f.col.String); err != nil {
			return nil, fmt.Errorf("transfer %s: bad reference %q: %w", id, f.col.String, err)
		}
	}

	return domain_transfer.Hydrate(p), nil
}

func nullableID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}

	return id.String()
}

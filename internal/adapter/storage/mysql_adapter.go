package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/ticket-service/internal/core/domain"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// MySQLPaymentGateway records every charge in the payments ledger and keeps
// a per-account running total.
type MySQLPaymentGateway struct {
	db  *sql.DB
	now func() time.Time
}

func NewMySQLPaymentGateway(db *sql.DB) *MySQLPaymentGateway {
	return &MySQLPaymentGateway{db: db, now: time.Now}
}

func (m *MySQLPaymentGateway) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS payments (
			id CHAR(36) PRIMARY KEY,
			account_id BIGINT NOT NULL,
			amount INT NOT NULL,
			created_at DATETIME(6) NOT NULL,
			INDEX idx_payments_account (account_id)
		)`,
		`CREATE TABLE IF NOT EXISTS account_balances (
			account_id BIGINT PRIMARY KEY,
			total_charged BIGINT NOT NULL,
			payment_count INT NOT NULL,
			updated_at DATETIME(6) NOT NULL
		)`,
	} {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

func (m *MySQLPaymentGateway) MakePayment(ctx context.Context, accountID domain.AccountID, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := m.now().UTC()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (id, account_id, amount, created_at)
		VALUES (?, ?, ?, ?)`,
		uuid.NewString(), int64(accountID), amount, now,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO account_balances (account_id, total_charged, payment_count, updated_at)
		VALUES (?, ?, 1, ?)
		ON DUPLICATE KEY UPDATE
			total_charged = total_charged + VALUES(total_charged),
			payment_count = payment_count + 1,
			updated_at = VALUES(updated_at)`,
		int64(accountID), amount, now,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	return tx.Commit()
}

// AccountBalance is the running total of charges for one account.
type AccountBalance struct {
	AccountID    domain.AccountID
	TotalCharged int
	PaymentCount int
	UpdatedAt    time.Time
}

// GetBalance returns nil when the account has never been charged.
func (m *MySQLPaymentGateway) GetBalance(ctx context.Context, accountID domain.AccountID) (*AccountBalance, error) {
	var bal AccountBalance
	var id int64
	err := m.db.QueryRowContext(ctx, `
		SELECT account_id, total_charged, payment_count, updated_at
		FROM account_balances WHERE account_id = ?`, int64(accountID),
	).Scan(&id, &bal.TotalCharged, &bal.PaymentCount, &bal.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query balance: %w", err)
	}

	bal.AccountID = domain.AccountID(id)
	return &bal, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
)

// PostgresTransactionRepo implements the payment.TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) payment.TransactionRepo {
	return &PostgresTransactionRepo{
		db: db,
	}
}

// CreateTransaction inserts a new transaction record
func (r *PostgresTransactionRepo) CreateTransaction(ctx context.Context, trx *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, invoice_number, user_id, amount, status,
			type, items_payload, payment_url, paid_at, created_at, updated_at
		) VALUES (
			:id, :invoice_number, :user_id, :amount, :status,
			:type, :items_payload, :payment_url, :paid_at, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, trx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionByInvoice retrieves a transaction by invoice number.
// Returns (nil, nil) when no transaction exists.
func (r *PostgresTransactionRepo) GetTransactionByInvoice(ctx context.Context, invoice string) (*models.Transaction, error) {
	query := `
		SELECT id, invoice_number, user_id, amount, status,
			type, items_payload, payment_url, paid_at, created_at, updated_at
		FROM transactions
		WHERE invoice_number = $1
	`

	var trx models.Transaction
	err := r.db.GetContext(ctx, &trx, query, invoice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &trx, nil
}

// UpdateTransactionIfPending atomically resolves a pending transaction.
// The status guard lives in the WHERE clause, so concurrent deliveries of
// the same notification race on a single conditional update and exactly
// one of them observes applied = true.
func (r *PostgresTransactionRepo) UpdateTransactionIfPending(ctx context.Context, invoice, status string, paidAt *time.Time) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $2, paid_at = $3, updated_at = NOW()
		WHERE invoice_number = $1 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, invoice, status, paidAt, models.TransactionStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mraditya/pasarku/services/payment"
)

// PostgresUserRepo implements the payment.UserRepo interface
type PostgresUserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) payment.UserRepo {
	return &PostgresUserRepo{
		db: db,
	}
}

// GetPremiumUntil retrieves a user's premium expiry.
// Returns (nil, nil) when the user has never held premium.
func (r *PostgresUserRepo) GetPremiumUntil(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	query := `
		SELECT premium_until
		FROM users
		WHERE id = $1
	`

	var premiumUntil sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&premiumUntil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %s", userID)
		}
		return nil, fmt.Errorf("failed to get premium expiry: %w", err)
	}

	if !premiumUntil.Valid {
		return nil, nil
	}
	return &premiumUntil.Time, nil
}

// SetPremiumUntil updates a user's premium expiry
func (r *PostgresUserRepo) SetPremiumUntil(ctx context.Context, userID uuid.UUID, until time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET premium_until = $1, updated_at = NOW()
		WHERE id = $2
	`, until, userID)
	if err != nil {
		return fmt.Errorf("failed to set premium expiry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}

	return nil
}

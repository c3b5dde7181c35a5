package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
)

// PostgresFeatureRepo implements the payment.FeatureRepo interface
type PostgresFeatureRepo struct {
	db *sqlx.DB
}

// NewFeatureRepository creates a new feature repository
func NewFeatureRepository(db *sqlx.DB) payment.FeatureRepo {
	return &PostgresFeatureRepo{
		db: db,
	}
}

// GetActiveFeature retrieves the active feature for a (listing, kind) pair.
// Returns (nil, nil) when no feature row exists.
func (r *PostgresFeatureRepo) GetActiveFeature(ctx context.Context, listingID, kind string) (*models.ActiveFeature, error) {
	query := `
		SELECT listing_id, kind, expires_at, remaining, updated_at
		FROM active_features
		WHERE listing_id = $1 AND kind = $2
	`

	var feature models.ActiveFeature
	err := r.db.GetContext(ctx, &feature, query, listingID, kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active feature: %w", err)
	}

	return &feature, nil
}

// MergeActiveFeature reads, merges and rewrites one (listing, kind) row
// under a row lock, so concurrent settlements granting to the same pair
// serialize and neither increment is lost.
//
// The row is seeded before locking because FOR UPDATE cannot lock a row
// that does not exist yet; a freshly seeded row carries no expiry and a
// zero counter, which merge functions treat the same as an absent one.
func (r *PostgresFeatureRepo) MergeActiveFeature(ctx context.Context, listingID, kind string, merge payment.FeatureMergeFunc) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seedQuery := `
		INSERT INTO active_features (listing_id, kind, expires_at, remaining, updated_at)
		VALUES ($1, $2, NULL, 0, NOW())
		ON CONFLICT (listing_id, kind) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, seedQuery, listingID, kind); err != nil {
		return fmt.Errorf("failed to seed active feature: %w", err)
	}

	lockQuery := `
		SELECT listing_id, kind, expires_at, remaining, updated_at
		FROM active_features
		WHERE listing_id = $1 AND kind = $2
		FOR UPDATE
	`
	var existing models.ActiveFeature
	if err := tx.GetContext(ctx, &existing, lockQuery, listingID, kind); err != nil {
		return fmt.Errorf("failed to lock active feature: %w", err)
	}

	merged := merge(&existing)

	updateQuery := `
		UPDATE active_features
		SET expires_at = :expires_at,
		    remaining = :remaining,
		    updated_at = :updated_at
		WHERE listing_id = :listing_id AND kind = :kind
	`
	if _, err := tx.NamedExecContext(ctx, updateQuery, merged); err != nil {
		return fmt.Errorf("failed to update active feature: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit feature merge: %w", err)
	}
	return nil
}

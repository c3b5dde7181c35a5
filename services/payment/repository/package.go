package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mraditya/pasarku/internal/pkg/constants"
	"github.com/mraditya/pasarku/internal/pkg/database"
	"github.com/mraditya/pasarku/internal/pkg/logger"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
)

// packageCacheTTL bounds staleness of cached package definitions.
// Packages change rarely; reconciliation reads them on every settlement.
const packageCacheTTL = 10 * time.Minute

// PostgresPackageRepo implements payment.PackageRepo with a Redis cache
// in front of PostgreSQL
type PostgresPackageRepo struct {
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewPackageRepository creates a new ad package repository
func NewPackageRepository(db *sqlx.DB, redisClient *database.RedisClient) payment.PackageRepo {
	return &PostgresPackageRepo{
		db:    db,
		redis: redisClient,
	}
}

// GetAdPackage retrieves an ad package definition with its feature grants
func (r *PostgresPackageRepo) GetAdPackage(ctx context.Context, id string) (*models.AdPackage, error) {
	cacheKey := fmt.Sprintf(constants.KeyAdPackage, id)

	if r.redis != nil {
		cached, err := r.redis.Get(ctx, cacheKey)
		if err == nil && cached != "" {
			var pkg models.AdPackage
			if err := json.Unmarshal([]byte(cached), &pkg); err == nil {
				return &pkg, nil
			}
			// Corrupt cache entry, fall through to the database
			logger.Warn("Discarding unreadable package cache entry", logger.String("key", cacheKey))
		}
	}

	pkg, err := r.getAdPackageFromDB(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(pkg); err == nil {
			if err := r.redis.Set(ctx, cacheKey, string(data), packageCacheTTL); err != nil {
				logger.Warn("Failed to cache package", logger.String("key", cacheKey), logger.Err(err))
			}
		}
	}

	return pkg, nil
}

func (r *PostgresPackageRepo) getAdPackageFromDB(ctx context.Context, id string) (*models.AdPackage, error) {
	query := `
		SELECT id, name, price
		FROM ad_packages
		WHERE id = $1
	`

	var pkg models.AdPackage
	err := r.db.GetContext(ctx, &pkg, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("package not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	grantsQuery := `
		SELECT kind, duration_days, quantity
		FROM package_grants
		WHERE package_id = $1
		ORDER BY kind
	`

	err = r.db.SelectContext(ctx, &pkg.Grants, grantsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package grants: %w", err)
	}

	return &pkg, nil
}

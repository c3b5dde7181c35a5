package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mraditya/pasarku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mraditya/pasarku/services/payment TransactionRepo,FeatureRepo,PackageRepo,UserRepo

// TransactionRepo defines persistence operations for transactions
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransactionByInvoice returns (nil, nil) when no transaction exists
	// for the invoice.
	GetTransactionByInvoice(ctx context.Context, invoice string) (*models.Transaction, error)

	// UpdateTransactionIfPending atomically moves a pending transaction to a
	// terminal status. It reports false when the transaction is absent or
	// already terminal, which is the sole idempotency gate for duplicate
	// webhook deliveries.
	UpdateTransactionIfPending(ctx context.Context, invoice, status string, paidAt *time.Time) (bool, error)
}

// FeatureMergeFunc computes the merged feature state from the currently
// stored one. It is called with the row locked; existing is nil when no
// feature has been granted to the (listing, kind) pair yet.
type FeatureMergeFunc func(existing *models.ActiveFeature) *models.ActiveFeature

// FeatureRepo defines persistence operations for active listing features
type FeatureRepo interface {
	// GetActiveFeature returns (nil, nil) when no feature row exists for the
	// (listing, kind) pair.
	GetActiveFeature(ctx context.Context, listingID, kind string) (*models.ActiveFeature, error)

	// MergeActiveFeature applies merge to the stored feature and writes the
	// result, holding a row lock for the duration so that concurrent
	// settlements granting to the same (listing, kind) pair serialize
	// instead of overwriting each other.
	MergeActiveFeature(ctx context.Context, listingID, kind string, merge FeatureMergeFunc) error
}

// PackageRepo resolves ad package definitions
type PackageRepo interface {
	GetAdPackage(ctx context.Context, id string) (*models.AdPackage, error)
}

// UserRepo defines the user operations the payment service needs
type UserRepo interface {
	// GetPremiumUntil returns (nil, nil) when the user has never held premium.
	GetPremiumUntil(ctx context.Context, userID uuid.UUID) (*time.Time, error)
	SetPremiumUntil(ctx context.Context, userID uuid.UUID, until time.Time) error
}

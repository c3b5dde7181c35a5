package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mraditya/pasarku/internal/pkg/logger"
	"github.com/mraditya/pasarku/internal/pkg/models"
)

// activate dispatches benefit activation for a settled transaction
func (uc *PaymentUsecase) activate(ctx context.Context, trx *models.Transaction) error {
	switch trx.Type {
	case models.TransactionTypeAdPackage:
		return uc.activateAdPackages(ctx, trx)
	case models.TransactionTypePremium:
		return uc.extendPremium(ctx, trx)
	default:
		logger.Warn("No activation defined for transaction type",
			logger.String("invoice", trx.InvoiceNumber),
			logger.String("type", trx.Type),
		)
		return nil
	}
}

type grantKey struct {
	listingID string
	kind      string
}

type grantTotal struct {
	duration time.Duration
	quantity int
}

// activateAdPackages resolves each purchased package to its feature grants
// and merges them into the listing's active features.
//
// Grants are first accumulated per (listing, kind) pair across all line
// items, then merged in one pass. Two packages granting highlight days to
// the same listing within one transaction therefore stack instead of the
// second overwriting the first.
func (uc *PaymentUsecase) activateAdPackages(ctx context.Context, trx *models.Transaction) error {
	var items []models.PurchasedItem
	if err := json.Unmarshal([]byte(trx.ItemsPayload), &items); err != nil {
		return fmt.Errorf("failed to decode items payload: %w", err)
	}

	totals := make(map[grantKey]grantTotal)
	for _, item := range items {
		pkg, err := uc.packageRepo.GetAdPackage(ctx, item.PackageID)
		if err != nil {
			return fmt.Errorf("failed to resolve package %s: %w", item.PackageID, err)
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		for _, grant := range pkg.Grants {
			key := grantKey{listingID: item.ListingID, kind: grant.Kind}
			total := totals[key]
			if models.TimeBoundedKinds[grant.Kind] {
				total.duration += time.Duration(grant.DurationDays*quantity) * 24 * time.Hour
			} else {
				total.quantity += grant.Quantity * quantity
			}
			totals[key] = total
		}
	}

	for key, total := range totals {
		if err := uc.mergeFeature(ctx, key, total); err != nil {
			return err
		}
	}
	return nil
}

// mergeFeature folds an accumulated grant into the existing active feature
// for one (listing, kind) pair. The merge runs under the repository's row
// lock, so parallel settlements granting to the same pair stack instead of
// overwriting each other.
func (uc *PaymentUsecase) mergeFeature(ctx context.Context, key grantKey, total grantTotal) error {
	err := uc.featureRepo.MergeActiveFeature(ctx, key.listingID, key.kind, func(existing *models.ActiveFeature) *models.ActiveFeature {
		now := time.Now()
		feature := &models.ActiveFeature{
			ListingID: key.listingID,
			Kind:      key.kind,
			UpdatedAt: now,
		}

		if models.TimeBoundedKinds[key.kind] {
			// Extend a still-running feature from its current expiry; a lapsed
			// or absent feature starts fresh from now
			base := now
			if existing != nil && existing.ExpiresAt != nil && existing.ExpiresAt.After(now) {
				base = *existing.ExpiresAt
			}
			expiry := base.Add(total.duration)
			feature.ExpiresAt = &expiry
		} else {
			remaining := total.quantity
			if existing != nil {
				remaining += existing.Remaining
			}
			feature.Remaining = remaining
		}
		return feature
	})
	if err != nil {
		return fmt.Errorf("failed to merge active feature: %w", err)
	}

	logger.Info("Feature activated",
		logger.String("listing_id", key.listingID),
		logger.String("kind", key.kind),
	)
	return nil
}

// extendPremium extends the owning user's premium window using the same
// stacking rule as time-bounded features: extend from the current expiry
// while it is still in the future, otherwise start from now.
func (uc *PaymentUsecase) extendPremium(ctx context.Context, trx *models.Transaction) error {
	var items []models.PurchasedItem
	if err := json.Unmarshal([]byte(trx.ItemsPayload), &items); err != nil {
		return fmt.Errorf("failed to decode items payload: %w", err)
	}

	units := 0
	for _, item := range items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		units += quantity
	}
	if units == 0 {
		units = 1
	}

	duration := time.Duration(uc.cfg.Premium.PlanDays*units) * 24 * time.Hour

	until, err := uc.userRepo.GetPremiumUntil(ctx, trx.UserID)
	if err != nil {
		return fmt.Errorf("failed to load premium expiry: %w", err)
	}

	now := time.Now()
	base := now
	if until != nil && until.After(now) {
		base = *until
	}

	newUntil := base.Add(duration)
	if err := uc.userRepo.SetPremiumUntil(ctx, trx.UserID, newUntil); err != nil {
		return fmt.Errorf("failed to extend premium: %w", err)
	}

	logger.Info("Premium extended",
		logger.String("user_id", trx.UserID.String()),
		logger.Time("until", newUntil),
	)
	return nil
}

package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mraditya/pasarku/internal/pkg/models"
	"github.com/mraditya/pasarku/services/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func highlightPackage() *models.AdPackage {
	return &models.AdPackage{
		ID:    "pkg-highlight-7",
		Name:  "Highlight 7 Hari",
		Price: 150000,
		Grants: []models.FeatureGrant{
			{Kind: models.FeatureKindHighlight, DurationDays: 7},
		},
	}
}

func boostPackage() *models.AdPackage {
	return &models.AdPackage{
		ID:    "pkg-boost-3",
		Name:  "Paket Sundul 3",
		Price: 30000,
		Grants: []models.FeatureGrant{
			{Kind: models.FeatureKindBoost, Quantity: 3},
		},
	}
}

// expectMerge registers a MergeActiveFeature expectation that feeds the
// merge function the given stored state and hands the result to inspect.
func expectMerge(m *usecaseMocks, listingID, kind string, existing *models.ActiveFeature, inspect func(merged *models.ActiveFeature)) {
	m.feature.EXPECT().
		MergeActiveFeature(gomock.Any(), listingID, kind, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, merge payment.FeatureMergeFunc) error {
			inspect(merge(existing))
			return nil
		})
}

func TestActivate_TimeBounded_FreshFeature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	trx := pendingTransaction(models.TransactionTypeAdPackage, []models.PurchasedItem{
		{PackageID: "pkg-highlight-7", ListingID: "listing-1", Quantity: 1},
	})
	trx.Status = models.TransactionStatusSuccess

	m.pkg.EXPECT().GetAdPackage(gomock.Any(), "pkg-highlight-7").Return(highlightPackage(), nil)
	expectMerge(m, "listing-1", models.FeatureKindHighlight, nil, func(merged *models.ActiveFeature) {
		assert.Equal(t, "listing-1", merged.ListingID)
		assert.Equal(t, models.FeatureKindHighlight, merged.Kind)
		require.NotNil(t, merged.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *merged.ExpiresAt, 5*time.Second)
		assert.Zero(t, merged.Remaining)
	})

	require.NoError(t, uc.activate(context.Background(), trx))
}

func TestActivate_TimeBounded_ExtendsRunningFeature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	trx := pendingTransaction(models.TransactionTypeAdPackage, []models.PurchasedItem{
		{PackageID: "pkg-highlight-7", ListingID: "listing-1", Quantity: 1},
	})

	existingExpiry := time.Now().Add(3 * 24 * time.Hour)
	existing := &models.ActiveFeature{
		ListingID: "listing-1",
		Kind:      models.FeatureKindHighlight,
		ExpiresAt: &existingExpiry,
	}

	m.pkg.EXPECT().GetAdPackage(gomock.Any(), "pkg-highlight-7").Return(highlightPackage(), nil)
	expectMerge(m, "listing-1", models.FeatureKindHighlight, existing, func(merged *models.ActiveFeature) {
		// Extension is anchored to the current expiry, not to now
		require.NotNil(t, merged.ExpiresAt)
		assert.Equal(t, existingExpiry.Add(7*24*time.Hour), *merged.ExpiresAt)
	})

	require.NoError(t, uc.activate(context.Background(), trx))
}

func TestActivate_TimeBounded_LapsedFeatureStartsFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	trx := pendingTransaction(models.TransactionTypeAdPackage, []models.PurchasedItem{
		{PackageID: "pkg-highlight-7", ListingID: "listing-1", Quantity: 1},
	})

	lapsedExpiry := time.Now().Add(-24 * time.Hour)
	existing := &models.ActiveFeature{
		ListingID: "listing-1",
		Kind:      models.FeatureKindHighlight,
		ExpiresAt: &lapsedExpiry,
	}

	m.pkg.EXPECT().GetAdPackage(gomock.Any(), "pkg-highlight-7").Return(highlightPackage(), nil)
	expectMerge(m, "listing-1", models.FeatureKindHighlight, existing, func(merged *models.ActiveFeature) {
		require.NotNil(t, merged.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *merged.ExpiresAt, 5*time.Second)
	})

	require.NoError(t, uc.activate(context.Background(), trx))
}

func TestActivate_Counted_SumsRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	trx := pendingTransaction(models.TransactionTypeAdPackage, []models.PurchasedItem{
		{PackageID: "pkg-boost-3", ListingID: "listing-1", Quantity: 1},
	})

	existing := &models.ActiveFeature{
		ListingID: "listing-1",
		Kind:      models.FeatureKindBoost,
		Remaining: 2,
	}

	m.pkg.EXPECT().GetAdPackage(gomock.Any(), "pkg-boost-3").Return(boostPackage(), nil)
	expectMerge(m, "listing-1", models.FeatureKindBoost, existing, func(merged *models.ActiveFeature) {
		assert.Equal(t, 5, merged.Remaining)
		assert.Nil(t, merged.ExpiresAt)
	})

	require.NoError(t, uc.activate(context.Background(), trx))
}

func TestActivate_AccumulatesGrantsAcrossLineItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	// Two line items grant highlight days to the same listing: one merge
	// with the summed duration, not two merges overwriting each other.
	trx := pendingTransaction(models.TransactionTypeAdPackage, []models.PurchasedItem{
		{PackageID: "pkg-highlight-7", ListingID: "listing-1", Quantity: 1},
		{PackageID: "pkg-highlight-7", ListingID: "listing-1", Quantity: 2},
	})

	m.pkg.EXPECT().GetAdPackage(gomock.Any(), "pkg-highlight-7").Return(highlightPackage(), nil).Times(2)
	expectMerge(m, "listing-1", models.FeatureKindHighlight, nil, func(merged *models.ActiveFeature) {
		require.NotNil(t, merged.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(21*24*time.Hour), *merged.ExpiresAt, 5*time.Second)
	})

	require.NoError(t, uc.activate(context.Background(), trx))
}

func TestActivate_QuantityMultipliesGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	trx := pendingTransaction(models.TransactionTypeAdPackage, []models.PurchasedItem{
		{PackageID: "pkg-boost-3", ListingID: "listing-1", Quantity: 4},
	})

	m.pkg.EXPECT().GetAdPackage(gomock.Any(), "pkg-boost-3").Return(boostPackage(), nil)
	expectMerge(m, "listing-1", models.FeatureKindBoost, nil, func(merged *models.ActiveFeature) {
		assert.Equal(t, 12, merged.Remaining)
	})

	require.NoError(t, uc.activate(context.Background(), trx))
}

// memoryFeatureRepo serializes merges behind a mutex the way the postgres
// implementation serializes them behind a row lock.
type memoryFeatureRepo struct {
	mu       sync.Mutex
	features map[string]*models.ActiveFeature
}

func newMemoryFeatureRepo() *memoryFeatureRepo {
	return &memoryFeatureRepo{features: make(map[string]*models.ActiveFeature)}
}

func (r *memoryFeatureRepo) GetActiveFeature(_ context.Context, listingID, kind string) (*models.ActiveFeature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.features[listingID+"/"+kind], nil
}

func (r *memoryFeatureRepo) MergeActiveFeature(_ context.Context, listingID, kind string, merge payment.FeatureMergeFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := listingID + "/" + kind
	r.features[key] = merge(r.features[key])
	return nil
}

func TestActivate_ConcurrentSettlementsAccumulate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	featureRepo := newMemoryFeatureRepo()
	uc.featureRepo = featureRepo

	// Two settlements for different invoices, each granting 3 boost
	// credits to the same listing, running in parallel: both increments
	// must land.
	m.pkg.EXPECT().GetAdPackage(gomock.Any(), "pkg-boost-3").Return(boostPackage(), nil).Times(2)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		trx := pendingTransaction(models.TransactionTypeAdPackage, []models.PurchasedItem{
			{PackageID: "pkg-boost-3", ListingID: "listing-1", Quantity: 1},
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- uc.activate(context.Background(), trx)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := featureRepo.GetActiveFeature(context.Background(), "listing-1", models.FeatureKindBoost)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 6, stored.Remaining)
}

func TestExtendPremium_StacksOnFutureExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	trx := pendingTransaction(models.TransactionTypePremium, []models.PurchasedItem{
		{PackageID: "premium-30", Quantity: 1},
	})

	current := time.Now().Add(10 * 24 * time.Hour)
	m.user.EXPECT().GetPremiumUntil(gomock.Any(), trx.UserID).Return(&current, nil)
	m.user.EXPECT().
		SetPremiumUntil(gomock.Any(), trx.UserID, current.Add(30*24*time.Hour)).
		Return(nil)

	require.NoError(t, uc.activate(context.Background(), trx))
}

func TestExtendPremium_StartsFromNowWithoutSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUsecase(ctrl)

	trx := pendingTransaction(models.TransactionTypePremium, []models.PurchasedItem{
		{PackageID: "premium-30", Quantity: 2},
	})

	m.user.EXPECT().GetPremiumUntil(gomock.Any(), trx.UserID).Return(nil, nil)
	m.user.EXPECT().
		SetPremiumUntil(gomock.Any(), trx.UserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, until time.Time) error {
			assert.WithinDuration(t, time.Now().Add(60*24*time.Hour), until, 5*time.Second)
			return nil
		})

	require.NoError(t, uc.activate(context.Background(), trx))
}

func TestActivate_UnknownTypeIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestUsecase(ctrl)

	trx := pendingTransaction("gift_card", nil)
	require.NoError(t, uc.activate(context.Background(), trx))
}

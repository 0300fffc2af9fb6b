package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgsoftwash/booking-api/internal/models"
)

// stubRepo serves a fixed catalog; only the list methods matter here.
type stubRepo struct {
	Repository

	services  []models.Service
	discounts []models.Discount

	listCalls int
	fail      bool
}

func (s *stubRepo) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	s.listCalls++
	if s.fail {
		return nil, errors.New("db down")
	}
	return s.services, nil
}

func (s *stubRepo) ListActiveDiscounts(ctx context.Context) ([]models.Discount, error) {
	if s.fail {
		return nil, errors.New("db down")
	}
	return s.discounts, nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context) (*Catalog, bool) { return nil, false }
func (noopCache) Set(ctx context.Context, c *Catalog)      {}
func (noopCache) Invalidate(ctx context.Context)           {}

func calculatorRepo() *stubRepo {
	return &stubRepo{
		services: []models.Service{
			{Key: "house-single", Category: models.CategoryBase, Price: 575, Duration: 3},
			{Key: "deck-medium", Category: models.CategoryBase, Price: 175, Duration: 2},
			{Key: "rv-short", Category: models.CategoryBase, Price: 75, Duration: 1},
			{Key: "house-single-roof", Category: models.CategoryAddon, Price: 225, Duration: 1},
			{Key: "house-single-windows", Category: models.CategoryAddon, Price: 60, Duration: 0.75},
		},
		discounts: []models.Discount{
			{Key: "multi-2", Percent: 10, Auto: true, MinServices: 2},
			{Key: "multi-3", Percent: 15, Auto: true, MinServices: 3},
			{Key: "cash", Percent: 10},
			{Key: "returning", Percent: 10},
		},
	}
}

func newQuote(repo *stubRepo) *Quote {
	return NewQuote(NewGetCatalog(repo, noopCache{}))
}

func TestQuoteSingleService(t *testing.T) {
	uc := newQuote(calculatorRepo())

	got, err := uc.Execute(context.Background(), QuoteInput{
		Services: []string{"house-single"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 575.0, got.Subtotal)
	assert.Equal(t, "", got.AutoDiscount)
	assert.Equal(t, 0.0, got.DiscountPercent)
	assert.Equal(t, 575.0, got.Total)
	assert.Equal(t, 3, got.Duration)
}

func TestQuoteTwoServicesAutoTier(t *testing.T) {
	uc := newQuote(calculatorRepo())

	got, err := uc.Execute(context.Background(), QuoteInput{
		Services: []string{"house-single", "deck-medium"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 750.0, got.Subtotal)
	assert.Equal(t, "multi-2", got.AutoDiscount)
	assert.Equal(t, 10.0, got.DiscountPercent)
	assert.Equal(t, 75.0, got.Savings)
	assert.Equal(t, 675.0, got.Total)
	assert.Equal(t, 5, got.Duration)
}

func TestQuoteThreeServicesHighestTierOnly(t *testing.T) {
	uc := newQuote(calculatorRepo())

	got, err := uc.Execute(context.Background(), QuoteInput{
		Services: []string{"house-single", "deck-medium", "rv-short"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 825.0, got.Subtotal)
	assert.Equal(t, "multi-3", got.AutoDiscount)
	// 15, not 25: tiers never stack with each other.
	assert.Equal(t, 15.0, got.DiscountPercent)
	assert.Equal(t, 701.25, got.Total)
}

func TestQuoteAddOnsDoNotCountTowardTiers(t *testing.T) {
	uc := newQuote(calculatorRepo())

	got, err := uc.Execute(context.Background(), QuoteInput{
		Services: []string{"house-single", "house-single-roof", "house-single-windows"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 860.0, got.Subtotal)
	assert.Equal(t, "", got.AutoDiscount)
	assert.Equal(t, 0.0, got.DiscountPercent)

	// Fractional add-on hours round up to a whole slot count.
	assert.Equal(t, 5, got.Duration)
}

func TestQuoteManualDiscountsAdditive(t *testing.T) {
	uc := newQuote(calculatorRepo())

	got, err := uc.Execute(context.Background(), QuoteInput{
		Services:  []string{"house-single", "deck-medium"},
		Discounts: []string{"cash", "returning"},
	})

	assert.NoError(t, err)
	// 10 auto + 10 cash + 10 returning.
	assert.Equal(t, 30.0, got.DiscountPercent)
	assert.Equal(t, 525.0, got.Total)
}

func TestQuoteUnknownKeysIgnored(t *testing.T) {
	uc := newQuote(calculatorRepo())

	got, err := uc.Execute(context.Background(), QuoteInput{
		Services:  []string{"house-single", "no-such-service"},
		Discounts: []string{"no-such-discount"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 575.0, got.Subtotal)
	assert.Equal(t, 0.0, got.DiscountPercent)
}

func TestQuoteRepositoryError(t *testing.T) {
	repo := calculatorRepo()
	repo.fail = true
	uc := newQuote(repo)

	_, err := uc.Execute(context.Background(), QuoteInput{Services: []string{"house-single"}})
	assert.Error(t, err)
}

func TestGetCatalogUsesCache(t *testing.T) {
	repo := calculatorRepo()
	uc := NewGetCatalog(repo, newRecordingCache())

	_, err := uc.Execute(context.Background())
	assert.NoError(t, err)
	_, err = uc.Execute(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
}

// recordingCache is a minimal always-hit-after-set cache.
type recordingCache struct {
	stored *Catalog
}

func newRecordingCache() *recordingCache { return &recordingCache{} }

func (c *recordingCache) Get(ctx context.Context) (*Catalog, bool) {
	return c.stored, c.stored != nil
}
func (c *recordingCache) Set(ctx context.Context, catalog *Catalog) { c.stored = catalog }
func (c *recordingCache) Invalidate(ctx context.Context)            { c.stored = nil }

package pricing

import (
	"context"

	"github.com/dgsoftwash/booking-api/internal/models"
)

// Catalog is the read-model the public calculator consumes.
type Catalog struct {
	Services  []models.Service  `json:"services"`
	Discounts []models.Discount `json:"discounts"`
}

type Repository interface {
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	ListActiveDiscounts(ctx context.Context) ([]models.Discount, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetDiscount(ctx context.Context, id uint) (*models.Discount, error)

	UpdateServiceField(ctx context.Context, id uint, field string, value any) error
	UpdateDiscountField(ctx context.Context, id uint, field string, value any) error

	// -------- Scheduled changes --------
	CreateSchedule(ctx context.Context, s *models.PricingSchedule) error
	DeleteSchedule(ctx context.Context, id uint) error
	ListSchedules(ctx context.Context) ([]models.PricingSchedule, error)
	ListDueSchedules(ctx context.Context, today string) ([]models.PricingSchedule, error)

	// ApplySchedule applies one due row to its target and marks the row
	// applied, atomically.
	ApplySchedule(ctx context.Context, s *models.PricingSchedule) error
}

// Cache is the short-TTL catalog duplicate. It may serve briefly stale
// data between writes, bounded by the TTL; every pricing write must
// call Invalidate.
type Cache interface {
	Get(ctx context.Context) (*Catalog, bool)
	Set(ctx context.Context, catalog *Catalog)
	Invalidate(ctx context.Context)
}

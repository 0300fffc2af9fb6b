package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/timezone"
	"github.com/dgsoftwash/booking-api/internal/usecase/pricing"
)

type PricingGormRepository struct {
	db *gorm.DB
}

func NewPricingGormRepository(db *gorm.DB) *PricingGormRepository {
	return &PricingGormRepository{db: db}
}

func (r *PricingGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("category ASC, sort_order ASC, id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *PricingGormRepository) ListActiveDiscounts(
	ctx context.Context,
) ([]models.Discount, error) {

	var discounts []models.Discount
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("id ASC").
		Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *PricingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *PricingGormRepository) GetDiscount(
	ctx context.Context,
	id uint,
) (*models.Discount, error) {

	var d models.Discount
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PricingGormRepository) UpdateServiceField(
	ctx context.Context,
	id uint,
	field string,
	value any,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Update(field, value).Error
}

func (r *PricingGormRepository) UpdateDiscountField(
	ctx context.Context,
	id uint,
	field string,
	value any,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Discount{}).
		Where("id = ?", id).
		Update(field, value).Error
}

// --------------------------------------------------
// Scheduled changes
// --------------------------------------------------

func (r *PricingGormRepository) CreateSchedule(
	ctx context.Context,
	s *models.PricingSchedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PricingGormRepository) DeleteSchedule(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Where("applied = false").
		Delete(&models.PricingSchedule{}, id).Error
}

func (r *PricingGormRepository) ListSchedules(
	ctx context.Context,
) ([]models.PricingSchedule, error) {

	var rows []models.PricingSchedule
	if err := r.db.WithContext(ctx).
		Order("effective_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PricingGormRepository) ListDueSchedules(
	ctx context.Context,
	today string,
) ([]models.PricingSchedule, error) {

	var rows []models.PricingSchedule
	if err := r.db.WithContext(ctx).
		Where("applied = false AND effective_date <= ?", today).
		Order("effective_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ApplySchedule writes the new value to the target and flips the row's
// applied flag in one transaction. The WHERE applied = false guard on
// the flag update makes a concurrent or repeated apply a no-op: when no
// row is updated the target write is rolled back.
func (r *PricingGormRepository) ApplySchedule(
	ctx context.Context,
	s *models.PricingSchedule,
) error {

	if s.Applied || s.EffectiveDate > timezone.Today() {
		return nil
	}

	parsed, err := pricing.ParseFieldValue(s.Field, s.NewValue)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimed := tx.
			Model(&models.PricingSchedule{}).
			Where("id = ? AND applied = false", s.ID).
			Update("applied", true)
		if claimed.Error != nil {
			return claimed.Error
		}
		if claimed.RowsAffected == 0 {
			// Already applied by an earlier sweep.
			return nil
		}

		switch {
		case s.ServiceID != nil:
			if err := tx.Model(&models.Service{}).
				Where("id = ?", *s.ServiceID).
				Update(s.Field, parsed).Error; err != nil {
				return err
			}
		case s.DiscountID != nil:
			if err := tx.Model(&models.Discount{}).
				Where("id = ?", *s.DiscountID).
				Update(s.Field, parsed).Error; err != nil {
				return err
			}
		default:
			return fmt.Errorf("pricing schedule %d has no target", s.ID)
		}

		s.Applied = true
		return nil
	})
}

var _ pricing.Repository = (*PricingGormRepository)(nil)

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/usecase/workorder"
)

type WorkOrderGormRepository struct {
	db *gorm.DB
}

func NewWorkOrderGormRepository(db *gorm.DB) *WorkOrderGormRepository {
	return &WorkOrderGormRepository{db: db}
}

func (r *WorkOrderGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.WorkOrder, error) {

	var wo models.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Customer").
		First(&wo, id).Error; err != nil {
		return nil, err
	}
	return &wo, nil
}

func (r *WorkOrderGormRepository) List(
	ctx context.Context,
) ([]models.WorkOrder, error) {

	var orders []models.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *WorkOrderGormRepository) Create(
	ctx context.Context,
	wo *models.WorkOrder,
) error {
	return r.db.WithContext(ctx).Create(wo).Error
}

func (r *WorkOrderGormRepository) Save(
	ctx context.Context,
	wo *models.WorkOrder,
) error {
	// Save with Select so clearing paid_at back to NULL persists.
	return r.db.WithContext(ctx).
		Model(wo).
		Select(
			"job_complete", "invoiced", "invoice_paid", "paid",
			"payment_method", "completion_notes", "admin_notes",
			"mileage", "paid_at",
		).
		Updates(wo).Error
}

var _ workorder.Repository = (*WorkOrderGormRepository)(nil)

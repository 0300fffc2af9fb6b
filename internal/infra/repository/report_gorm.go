package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/usecase/report"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) ListPaidWorkOrders(
	ctx context.Context,
	year int,
) ([]models.WorkOrder, error) {

	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-01-01", year+1)

	var orders []models.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Customer").
		Where("paid = true AND paid_at >= ? AND paid_at < ?", from, to).
		Order("paid_at ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *ReportGormRepository) ListExpenses(
	ctx context.Context,
	year int,
	month int,
) ([]models.Expense, error) {

	q := r.db.WithContext(ctx)
	if month > 0 {
		q = q.Where("date LIKE ?", fmt.Sprintf("%04d-%02d-%%", year, month))
	} else {
		q = q.Where("date LIKE ?", fmt.Sprintf("%04d-%%", year))
	}

	var expenses []models.Expense
	if err := q.Order("date ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

var _ report.Repository = (*ReportGormRepository)(nil)

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/dgsoftwash/booking-api/internal/domain/schedule"
	"github.com/dgsoftwash/booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ScheduleGormRepository) ListBookingsForRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ScheduleGormRepository) ListBlocksForDate(
	ctx context.Context,
	date string,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) ListBlocksForRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.Block, error) {

	var blocks []models.Block
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ScheduleGormRepository) GetServiceByKey(
	ctx context.Context,
	key string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("key = ? AND active = true", key).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	email string,
	phone string,
	address string,
) (*models.Customer, error) {

	var customer models.Customer

	if email != "" {
		err := r.db.WithContext(ctx).
			Where("email = ?", email).
			First(&customer).Error
		if err == nil {
			return &customer, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if phone != "" {
		err := r.db.WithContext(ctx).
			Where("phone = ?", phone).
			First(&customer).Error
		if err == nil {
			return &customer, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	customer = models.Customer{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *ScheduleGormRepository) CreateWorkOrder(
	ctx context.Context,
	wo *models.WorkOrder,
) error {
	return r.db.WithContext(ctx).Create(wo).Error
}

func (r *ScheduleGormRepository) DeleteBookingByID(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (r *ScheduleGormRepository) DeleteBookingsAt(
	ctx context.Context,
	date string,
	slot string,
) error {
	return r.db.WithContext(ctx).
		Where("date = ? AND time = ?", date, slot).
		Delete(&models.Booking{}).Error
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *ScheduleGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)

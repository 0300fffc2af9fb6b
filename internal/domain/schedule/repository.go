package schedule

import (
	"context"

	"github.com/dgsoftwash/booking-api/internal/models"
)

type Repository interface {
	// -------- Reads (availability) --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	ListBookingsForRange(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Booking, error)

	ListBlocksForDate(
		ctx context.Context,
		date string,
	) ([]models.Block, error)

	ListBlocksForRange(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Block, error)

	// -------- Catalog lookup --------
	GetServiceByKey(
		ctx context.Context,
		key string,
	) (*models.Service, error)

	// -------- Customer (dedupe by email, then phone) --------
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		email string,
		phone string,
		address string,
	) (*models.Customer, error)

	// -------- Writes --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	CreateWorkOrder(
		ctx context.Context,
		wo *models.WorkOrder,
	) error

	DeleteBookingByID(
		ctx context.Context,
		id uint,
	) error

	DeleteBookingsAt(
		ctx context.Context,
		date string,
		slot string,
	) error

	// Transaction runs fn against a repository bound to one database
	// transaction; the allocator's re-check and inserts go through it.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}

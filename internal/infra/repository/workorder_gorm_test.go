package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgsoftwash/booking-api/internal/models"
)

func TestWorkOrderSaveClearsPaidAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkOrderGormRepository(db)
	ctx := context.Background()

	now := time.Now()
	wo := &models.WorkOrder{Service: "house-single", Price: "$575.00", Paid: true, PaidAt: &now}
	require.NoError(t, repo.Create(ctx, wo))

	wo.Paid = false
	wo.PaidAt = nil
	require.NoError(t, repo.Save(ctx, wo))

	got, err := repo.Get(ctx, wo.ID)
	require.NoError(t, err)
	assert.False(t, got.Paid)
	assert.Nil(t, got.PaidAt)
}

func TestWorkOrderGetPreloadsRelations(t *testing.T) {
	db := newTestDB(t)
	repo := NewWorkOrderGormRepository(db)
	ctx := context.Background()

	customer := models.Customer{Name: "Pat Doe", Email: "pat@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	booking := models.Booking{
		Date: "2026-03-06", Time: "09:00", Duration: 2,
		Name: "Pat Doe", CustomerID: &customer.ID,
	}
	require.NoError(t, db.Create(&booking).Error)

	wo := &models.WorkOrder{
		BookingID: &booking.ID, CustomerID: &customer.ID,
		Service: "house-rancher", Price: "$350.00",
	}
	require.NoError(t, repo.Create(ctx, wo))

	got, err := repo.Get(ctx, wo.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Booking)
	require.NotNil(t, got.Customer)
	assert.Equal(t, "2026-03-06", got.Booking.Date)
	assert.Equal(t, "Pat Doe", got.Customer.Name)
}

package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgsoftwash/booking-api/internal/models"
)

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 350.0, ParsePrice("$350.00"))
	assert.Equal(t, 450.0, ParsePrice("450"))
	assert.Equal(t, 1250.5, ParsePrice("$1,250.50"))
	assert.Equal(t, 75.0, ParsePrice("  $75  "))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice("call for quote"))
	assert.Equal(t, 0.0, ParsePrice("$"))
}

type fixedRepo struct {
	orders   []models.WorkOrder
	expenses []models.Expense
}

func (r *fixedRepo) ListPaidWorkOrders(ctx context.Context, year int) ([]models.WorkOrder, error) {
	return r.orders, nil
}

func (r *fixedRepo) ListExpenses(ctx context.Context, year, month int) ([]models.Expense, error) {
	return r.expenses, nil
}

func paidAt(month, day int) *time.Time {
	ts := time.Date(2026, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	return &ts
}

func uintp(v uint) *uint { return &v }

func yearRepo() *fixedRepo {
	return &fixedRepo{
		orders: []models.WorkOrder{
			{
				ID: 1, Service: "house-single", Price: "$575.00", Mileage: 12,
				PaymentMethod: "cash", Paid: true, PaidAt: paidAt(3, 10),
				CustomerID: uintp(1), Customer: &models.Customer{ID: 1, Name: "Pat Doe"},
			},
			{
				ID: 2, Service: "house-single", Price: "$575.00", Mileage: 8,
				PaymentMethod: "check", Paid: true, PaidAt: paidAt(3, 20),
				CustomerID: uintp(2), Customer: &models.Customer{ID: 2, Name: "Sam Roe"},
			},
			{
				ID: 3, Service: "rv-short", Price: "$75.00",
				PaymentMethod: "cash", Paid: true, PaidAt: paidAt(7, 4),
				CustomerID: uintp(1), Customer: &models.Customer{ID: 1, Name: "Pat Doe"},
			},
			{
				// Free-text garbage price counts as zero, not an error.
				ID: 4, Service: "deck-medium", Price: "traded for firewood",
				Paid: true, PaidAt: paidAt(7, 5),
			},
		},
		expenses: []models.Expense{
			{Date: "2026-03-02", Category: "fuel", Amount: 80},
			{Date: "2026-07-01", Category: "soap", Amount: 45.5},
			{Date: "garbage-date", Category: "misc", Amount: 10},
		},
	}
}

func TestRevenueReport(t *testing.T) {
	uc := NewRevenue(yearRepo())

	got, err := uc.Execute(context.Background(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 1225.0, got.TotalGross)
	assert.Equal(t, 135.5, got.TotalExpense)
	assert.Equal(t, 1089.5, got.TotalNet)
	assert.Equal(t, 20.0, got.TotalMileage)
	assert.InDelta(t, 13.4, got.MileageDeduction, 0.0001)

	require.Len(t, got.Months, 12)
	march := got.Months[2]
	assert.Equal(t, 1150.0, march.Gross)
	assert.Equal(t, 80.0, march.Expense)
	assert.Equal(t, 1070.0, march.Net)
	july := got.Months[6]
	assert.Equal(t, 75.0, july.Gross)

	// Sorted by revenue, biggest first.
	require.NotEmpty(t, got.ByService)
	assert.Equal(t, "house-single", got.ByService[0].Service)
	assert.Equal(t, 1150.0, got.ByService[0].Revenue)
	assert.Equal(t, 2, got.ByService[0].Jobs)

	require.NotEmpty(t, got.TopCustomers)
	assert.Equal(t, "Pat Doe", got.TopCustomers[0].Name)
	assert.Equal(t, 650.0, got.TopCustomers[0].Spend)
	assert.Equal(t, 2, got.TopCustomers[0].Jobs)
}

func TestPaymentsLedgerFilters(t *testing.T) {
	uc := NewPayments(yearRepo())
	ctx := context.Background()

	all, err := uc.Execute(ctx, 2026, 0, "")
	require.NoError(t, err)
	assert.Len(t, all.Entries, 4)
	assert.Equal(t, 1225.0, all.Total)

	march, err := uc.Execute(ctx, 2026, 3, "")
	require.NoError(t, err)
	assert.Len(t, march.Entries, 2)
	assert.Equal(t, 1150.0, march.Total)

	cash, err := uc.Execute(ctx, 2026, 0, "Cash")
	require.NoError(t, err)
	assert.Len(t, cash.Entries, 2)
	assert.Equal(t, 650.0, cash.Total)

	none, err := uc.Execute(ctx, 2026, 12, "")
	require.NoError(t, err)
	assert.Empty(t, none.Entries)
	assert.Equal(t, 0.0, none.Total)
}

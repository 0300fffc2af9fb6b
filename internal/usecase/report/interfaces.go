package report

import (
	"context"

	"github.com/dgsoftwash/booking-api/internal/models"
)

type Repository interface {
	// ListPaidWorkOrders returns work orders paid within the year,
	// booking and customer preloaded.
	ListPaidWorkOrders(ctx context.Context, year int) ([]models.WorkOrder, error)

	// ListExpenses filters by year, and by month when month > 0.
	ListExpenses(ctx context.Context, year int, month int) ([]models.Expense, error)
}

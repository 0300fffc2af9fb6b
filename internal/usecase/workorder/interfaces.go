package workorder

import (
	"context"

	"github.com/dgsoftwash/booking-api/internal/models"
)

type Repository interface {
	Get(ctx context.Context, id uint) (*models.WorkOrder, error)
	List(ctx context.Context) ([]models.WorkOrder, error)
	Create(ctx context.Context, wo *models.WorkOrder) error
	Save(ctx context.Context, wo *models.WorkOrder) error
}

package booking

import (
	"context"

	domain "github.com/dgsoftwash/booking-api/internal/domain/schedule"
)

type Cancel struct {
	repo domain.Repository
}

func NewCancel(repo domain.Repository) *Cancel {
	return &Cancel{repo: repo}
}

// ByID deletes one booking. Rescheduling is modeled as cancel plus a
// fresh request through Create.
func (uc *Cancel) ByID(ctx context.Context, id uint) error {
	return uc.repo.DeleteBookingByID(ctx, id)
}

// At deletes whatever booking starts at the given date and slot; used
// by the admin block/cancel action which addresses bookings by
// position, not id.
func (uc *Cancel) At(ctx context.Context, date, slot string) error {
	return uc.repo.DeleteBookingsAt(ctx, date, slot)
}

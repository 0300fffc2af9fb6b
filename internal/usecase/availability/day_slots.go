package availability

import (
	"context"

	domain "github.com/dgsoftwash/booking-api/internal/domain/schedule"
)

type DaySlots struct {
	repo domain.Repository
}

func NewDaySlots(repo domain.Repository) *DaySlots {
	return &DaySlots{repo: repo}
}

// Execute reports per-slot availability for one date. A whole-day block
// forces every slot unavailable regardless of bookings. Read-only.
func (uc *DaySlots) Execute(
	ctx context.Context,
	date string,
) ([]domain.SlotStatus, error) {

	blocks, err := uc.repo.ListBlocksForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	dayBlocked, blockedSlots := domain.BlockIndex(blocks)

	bookings, err := uc.repo.ListBookingsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	occupied := domain.OccupiedSet(bookings)

	slots := make([]domain.SlotStatus, 0, domain.SlotsPerDay)
	for _, slot := range domain.ValidSlots {
		available := !dayBlocked && !occupied[slot] && !blockedSlots[slot]
		slots = append(slots, domain.SlotStatus{
			Time:      slot,
			Available: available,
		})
	}

	return slots, nil
}

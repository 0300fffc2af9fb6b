package availability

import (
	"context"
	"fmt"
	"time"

	domain "github.com/dgsoftwash/booking-api/internal/domain/schedule"
	"github.com/dgsoftwash/booking-api/internal/models"
)

type Month struct {
	repo domain.Repository
}

func NewMonth(repo domain.Repository) *Month {
	return &Month{repo: repo}
}

// Execute returns an available-slot count per calendar day of the
// month, 0 for whole-day-blocked dates. Bookings and blocks are read
// for the queried month only.
func (uc *Month) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]domain.DayOverview, error) {

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	to := fmt.Sprintf("%04d-%02d-%02d", year, month, daysInMonth)

	bookings, err := uc.repo.ListBookingsForRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	blocks, err := uc.repo.ListBlocksForRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	bookingsByDate := make(map[string][]models.Booking)
	for _, b := range bookings {
		bookingsByDate[b.Date] = append(bookingsByDate[b.Date], b)
	}
	blocksByDate := make(map[string][]models.Block)
	for _, b := range blocks {
		blocksByDate[b.Date] = append(blocksByDate[b.Date], b)
	}

	days := make([]domain.DayOverview, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

		dayBlocked, blockedSlots := domain.BlockIndex(blocksByDate[date])
		if dayBlocked {
			days = append(days, domain.DayOverview{Date: date, AvailableSlots: 0})
			continue
		}

		occupied := domain.OccupiedSet(bookingsByDate[date])

		available := 0
		for _, slot := range domain.ValidSlots {
			if !occupied[slot] && !blockedSlots[slot] {
				available++
			}
		}

		days = append(days, domain.DayOverview{Date: date, AvailableSlots: available})
	}

	return days, nil
}

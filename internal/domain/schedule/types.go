package schedule

import "github.com/dgsoftwash/booking-api/internal/models"

type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type DayOverview struct {
	Date           string `json:"date"`
	AvailableSlots int    `json:"availableSlots"`
}

// OccupiedSet flattens a day's bookings into the set of slot times they
// consume.
func OccupiedSet(bookings []models.Booking) map[string]bool {
	occupied := make(map[string]bool)
	for _, b := range bookings {
		for _, s := range OccupiedSlots(b.Time, b.Duration) {
			occupied[s] = true
		}
	}
	return occupied
}

// BlockIndex splits a day's blocks into a whole-day flag and the set of
// individually blocked slots.
func BlockIndex(blocks []models.Block) (dayBlocked bool, slots map[string]bool) {
	slots = make(map[string]bool)
	for _, b := range blocks {
		if b.Time == models.BlockAllDay {
			dayBlocked = true
			continue
		}
		slots[b.Time] = true
	}
	return dayBlocked, slots
}

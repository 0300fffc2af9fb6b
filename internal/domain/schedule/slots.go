package schedule

import "time"

// ValidSlots is the fixed daily grid of bookable start times, ordered.
// One slot is one hour of work; durations are counted in slots.
var ValidSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00"}

// SlotsPerDay is the day's slot capacity.
var SlotsPerDay = len(ValidSlots)

const DateLayout = "2006-01-02"

// SlotIndex returns the position of t in the daily grid, or -1.
func SlotIndex(t string) int {
	for i, s := range ValidSlots {
		if s == t {
			return i
		}
	}
	return -1
}

func IsValidSlot(t string) bool {
	return SlotIndex(t) >= 0
}

// OccupiedSlots returns the contiguous slots a booking consumes,
// clipped to the day's length. Callers that need exactness must reject
// overflow themselves before relying on the clipped result.
func OccupiedSlots(start string, duration int) []string {
	if duration < 1 {
		duration = 1
	}
	idx := SlotIndex(start)
	if idx < 0 {
		return []string{start}
	}
	slots := make([]string, 0, duration)
	for i := 0; i < duration && idx+i < SlotsPerDay; i++ {
		slots = append(slots, ValidSlots[idx+i])
	}
	return slots
}

// ParseDate parses a YYYY-MM-DD calendar date in the given location.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// NextWorkingDay returns the calendar day after d, skipping forward one
// more day when that lands on Sunday (the business does not operate).
func NextWorkingDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	if next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// AddBusinessDays advances d by n weekdays, skipping Saturday and
// Sunday. Used for invoice due dates.
func AddBusinessDays(d time.Time, n int) time.Time {
	for n > 0 {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n--
		}
	}
	return d
}

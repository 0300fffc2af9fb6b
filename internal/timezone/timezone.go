package timezone

import "time"

// The business operates in a single US-eastern service area; all
// calendar math (availability, sweeps, due dates) runs in this zone.
const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}

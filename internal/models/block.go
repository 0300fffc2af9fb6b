package models

import "time"

// BlockAllDay is the sentinel Time value that marks an entire date
// unavailable regardless of bookings.
const BlockAllDay = "all"

// Block is admin-imposed unavailability for one slot, or the whole day
// when Time is BlockAllDay.
type Block struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   string `gorm:"size:10;not null;index" json:"date"`
	Time   string `gorm:"size:5;not null" json:"time"`
	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

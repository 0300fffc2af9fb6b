package models

import "time"

// Booking occupies Duration consecutive slots starting at Time on Date.
// Date/Time/Duration are immutable after creation; rescheduling is a
// cancel followed by a fresh booking.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date     string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time     string `gorm:"size:5;not null" json:"time"`        // HH:MM
	Duration int    `gorm:"default:1" json:"duration"`          // whole slots

	Name    string `gorm:"size:100" json:"name"`
	Email   string `gorm:"size:100" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Service string `gorm:"size:50" json:"service"`
	Price   string `gorm:"size:20" json:"price"` // display string, e.g. "$350.00"
	Notes   string `gorm:"size:500" json:"notes"`

	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

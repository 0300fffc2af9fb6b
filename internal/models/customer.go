package models

import "time"

// Customer rows are deduplicated by email first, then phone, on every
// booking-producing flow.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;index" json:"email"`
	Phone   string `gorm:"size:20;index" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
	Notes   string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

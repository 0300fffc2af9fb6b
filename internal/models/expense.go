package models

import "time"

// Expense is a simple admin-maintained ledger row.
type Expense struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date     string  `gorm:"size:10;not null;index" json:"date"`
	Category string  `gorm:"size:50" json:"category"`
	Amount   float64 `json:"amount"`
	Notes    string  `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

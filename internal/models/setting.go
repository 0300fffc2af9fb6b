package models

import "time"

// Setting holds ledger-style key/value figures shown on the admin
// console (available balance, credit-line balances, ...).
type Setting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:255" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// Service categories.
const (
	CategoryBase  = "base"
	CategoryAddon = "addon"
)

// Service is one catalog entry, either a base offering or an add-on
// linked to its base variant through ParentKey.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key       string  `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Label     string  `gorm:"size:100;not null" json:"label"`
	Category  string  `gorm:"size:20;default:'base'" json:"category"`
	ParentKey string  `gorm:"size:50" json:"parent_key"`
	Price     int     `json:"price"`    // whole currency units
	Duration  float64 `json:"duration"` // slots, rounded up when booking
	SortOrder int     `json:"sort_order"`

	// Mutually-exclusive calculator selection group ("house", "rv", ...).
	Group string `gorm:"size:20" json:"group"`

	Bookable bool `gorm:"default:true" json:"bookable"`
	Active   bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Discount is either auto-applied once MinServices base services are
// selected, or toggled manually by the customer.
type Discount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key         string  `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Label       string  `gorm:"size:100;not null" json:"label"`
	Percent     float64 `json:"percent"`
	Auto        bool    `gorm:"default:false" json:"auto"`
	MinServices int     `json:"min_services"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PricingSchedule is a pending future change to exactly one Service or
// Discount field. Applied flips false to true exactly once, when the
// sweep first observes EffectiveDate <= today.
type PricingSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID  *uint     `json:"service_id"`
	Service    *Service  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`
	DiscountID *uint     `json:"discount_id"`
	Discount   *Discount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"discount,omitempty"`

	Field         string `gorm:"size:20;not null" json:"field"` // price | duration | percent
	NewValue      string `gorm:"size:50;not null" json:"new_value"`
	EffectiveDate string `gorm:"size:10;not null;index" json:"effective_date"`
	Applied       bool   `gorm:"default:false;index" json:"applied"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

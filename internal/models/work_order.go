package models

import "time"

// WorkOrder tracks fulfillment and billing after a Booking exists, or
// stands alone as an admin-generated record with no Booking.
type WorkOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID *uint    `json:"booking_id"`
	Booking   *Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking,omitempty"`

	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	Service string `gorm:"size:50" json:"service"`
	Price   string `gorm:"size:20" json:"price"`

	JobComplete bool `gorm:"default:false" json:"job_complete"`
	Invoiced    bool `gorm:"default:false" json:"invoiced"`
	InvoicePaid bool `gorm:"default:false" json:"invoice_paid"`
	Paid        bool `gorm:"default:false" json:"paid"`

	PaymentMethod   string  `gorm:"size:30" json:"payment_method"`
	CompletionNotes string  `gorm:"type:text" json:"completion_notes"`
	AdminNotes      string  `gorm:"type:text" json:"admin_notes"`
	Mileage         float64 `json:"mileage"`

	// Set exactly when Paid flips false->true, cleared on revert.
	PaidAt *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

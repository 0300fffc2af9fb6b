package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceEmailDueDateSkipsWeekend(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")

	// Invoiced Wednesday 2026-03-04: five business days later is
	// Wednesday 2026-03-11.
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, loc)
	email := InvoiceEmail("pat@example.com", "Pat", "house-single", "$575.00", now)

	assert.Equal(t, "pat@example.com", email.To)
	assert.Contains(t, email.Body, "Wednesday, March 11, 2026")
	assert.Contains(t, email.Body, "$575.00")
}

func TestReminderSMS(t *testing.T) {
	sms := ReminderSMS("555-0101", "2026-03-06", "09:00")

	assert.Equal(t, "555-0101", sms.To)
	assert.Contains(t, sms.Body, "2026-03-06 at 09:00")
}

package notify

import (
	"fmt"
	"time"

	"github.com/dgsoftwash/booking-api/internal/domain/schedule"
)

const businessName = "D&G Soft Wash"

// InvoiceEmail builds the invoice notification with a due date five
// business days out, weekends skipped.
func InvoiceEmail(to, customerName, service, price string, now time.Time) Email {
	due := schedule.AddBusinessDays(now, 5)
	return Email{
		To:      to,
		Subject: fmt.Sprintf("Your %s Invoice", businessName),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour invoice for %s is ready: %s.\nPayment is due by %s.\n\nThank you,\n%s",
			customerName, service, price, due.Format("Monday, January 2, 2006"), businessName,
		),
	}
}

// ReceiptEmail confirms an invoice payment.
func ReceiptEmail(to, customerName, service, price string) Email {
	return Email{
		To:      to,
		Subject: fmt.Sprintf("%s Payment Received", businessName),
		Body: fmt.Sprintf(
			"Hi %s,\n\nWe've received your payment of %s for %s. You're all set!\n\nThank you,\n%s",
			customerName, price, service, businessName,
		),
	}
}

// ContactEmail forwards a plain contact-form message to the business
// inbox when no appointment was requested.
func ContactEmail(businessInbox, name, email, phone, message string) Email {
	return Email{
		To:      businessInbox,
		Subject: fmt.Sprintf("New Contact from %s - %s", name, businessName),
		Body: fmt.Sprintf(
			"Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s",
			name, email, phone, message,
		),
	}
}

// BookingEmail notifies the business inbox of a confirmed booking.
func BookingEmail(businessInbox, name, service, date, slot string) Email {
	return Email{
		To:      businessInbox,
		Subject: fmt.Sprintf("New Booking: %s on %s", service, date),
		Body: fmt.Sprintf(
			"%s booked %s for %s at %s.",
			name, service, date, slot,
		),
	}
}

// ReviewRequestEmail asks a customer for a review after a finished job.
func ReviewRequestEmail(to, customerName string) Email {
	return Email{
		To:      to,
		Subject: fmt.Sprintf("How did we do? - %s", businessName),
		Body: fmt.Sprintf(
			"Hi %s,\n\nThanks for choosing %s! If you have a minute, we'd love a review - it helps our small business a lot.\n\nThank you,\n%s",
			customerName, businessName, businessName,
		),
	}
}

// ReminderSMS reminds a customer of an upcoming appointment.
func ReminderSMS(to, date, slot string) SMS {
	return SMS{
		To:   to,
		Body: fmt.Sprintf("%s reminder: your appointment is %s at %s. Reply or call with any questions.", businessName, date, slot),
	}
}

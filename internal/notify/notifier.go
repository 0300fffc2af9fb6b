package notify

import "context"

// Email is the payload contract with the delivery sink.
type Email struct {
	To      string
	Subject string
	Body    string
}

// SMS is the payload contract for text reminders.
type SMS struct {
	To   string
	Body string
}

// Sender delivers notifications. Delivery is best-effort for status
// side effects; only the notification-primary endpoints (review
// request, SMS reminder) surface a send failure to the caller.
type Sender interface {
	SendEmail(ctx context.Context, email Email) error
	SendSMS(ctx context.Context, sms SMS) error
}

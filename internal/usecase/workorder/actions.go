package workorder

import (
	"context"

	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/notify"
)

// Actions covers the remaining admin operations on work orders:
// standalone creation and the notification-primary outbound actions,
// where a send failure is the endpoint's failure.
type Actions struct {
	repo   Repository
	sender notify.Sender
}

func NewActions(repo Repository, sender notify.Sender) *Actions {
	return &Actions{repo: repo, sender: sender}
}

// CreateStandalone records a quote or manual job with no booking.
func (uc *Actions) CreateStandalone(
	ctx context.Context,
	customerID *uint,
	service string,
	price string,
	adminNotes string,
) (*models.WorkOrder, error) {

	wo := &models.WorkOrder{
		CustomerID: customerID,
		Service:    service,
		Price:      price,
		AdminNotes: adminNotes,
	}
	if err := uc.repo.Create(ctx, wo); err != nil {
		return nil, err
	}
	return wo, nil
}

// RequestReview emails the customer a review ask. Sent synchronously:
// the send is the action.
func (uc *Actions) RequestReview(ctx context.Context, id uint) error {
	wo, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if wo.Customer == nil || wo.Customer.Email == "" {
		return httperr.ErrBusiness("no_email", "No email address on file for this customer.")
	}

	return uc.sender.SendEmail(ctx, notify.ReviewRequestEmail(wo.Customer.Email, wo.Customer.Name))
}

// SendReminder texts the customer about the linked booking.
func (uc *Actions) SendReminder(ctx context.Context, id uint) error {
	wo, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if wo.Customer == nil || wo.Customer.Phone == "" {
		return httperr.ErrBusiness("no_phone", "No phone number on file for this customer.")
	}
	if wo.Booking == nil {
		return httperr.ErrBusiness("no_booking", "This work order has no appointment to remind about.")
	}

	return uc.sender.SendSMS(ctx, notify.ReminderSMS(wo.Customer.Phone, wo.Booking.Date, wo.Booking.Time))
}

package workorder

import (
	"context"

	domain "github.com/dgsoftwash/booking-api/internal/domain/workorder"
	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/notify"
	"github.com/dgsoftwash/booking-api/internal/timezone"
)

// UpdateInput carries a partial patch; nil fields are left untouched.
type UpdateInput struct {
	JobComplete *bool
	Invoiced    *bool
	InvoicePaid *bool
	Paid        *bool

	PaymentMethod   *string
	CompletionNotes *string
	AdminNotes      *string
	Mileage         *float64
}

type UpdateResult struct {
	WorkOrder *models.WorkOrder
	// Which customer email was attempted: "invoice", "receipt" or "".
	EmailSent domain.Notification
}

type UpdateStatus struct {
	repo   Repository
	notify *notify.Dispatcher
}

func NewUpdateStatus(repo Repository, dispatcher *notify.Dispatcher) *UpdateStatus {
	return &UpdateStatus{repo: repo, notify: dispatcher}
}

// Execute applies a status patch, stamps or clears the paid timestamp,
// and queues at most one customer email per call. The email is a
// best-effort side effect: the status write succeeds whether or not
// delivery does.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*UpdateResult, error) {

	wo, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	old := flagsOf(wo)
	applyPatch(wo, in)
	updated := flagsOf(wo)

	switch domain.PaidChange(old, updated) {
	case 1:
		now := timezone.Now()
		wo.PaidAt = &now
	case -1:
		wo.PaidAt = nil
	}

	if err := uc.repo.Save(ctx, wo); err != nil {
		return nil, err
	}

	fired := domain.Transition(old, updated)
	if fired != domain.NotifyNone {
		if email, ok := uc.buildEmail(wo, fired); ok {
			uc.notify.DispatchEmail(email)
		} else {
			// No address on file: nothing fires, and the caller sees that.
			fired = domain.NotifyNone
		}
	}

	return &UpdateResult{WorkOrder: wo, EmailSent: fired}, nil
}

func (uc *UpdateStatus) buildEmail(wo *models.WorkOrder, kind domain.Notification) (notify.Email, bool) {
	if wo.Customer == nil || wo.Customer.Email == "" {
		return notify.Email{}, false
	}

	switch kind {
	case domain.NotifyInvoice:
		return notify.InvoiceEmail(wo.Customer.Email, wo.Customer.Name, wo.Service, wo.Price, timezone.Now()), true
	case domain.NotifyReceipt:
		return notify.ReceiptEmail(wo.Customer.Email, wo.Customer.Name, wo.Service, wo.Price), true
	default:
		return notify.Email{}, false
	}
}

func flagsOf(wo *models.WorkOrder) domain.Flags {
	return domain.Flags{
		JobComplete: wo.JobComplete,
		Invoiced:    wo.Invoiced,
		InvoicePaid: wo.InvoicePaid,
		Paid:        wo.Paid,
	}
}

func applyPatch(wo *models.WorkOrder, in UpdateInput) {
	if in.JobComplete != nil {
		wo.JobComplete = *in.JobComplete
	}
	if in.Invoiced != nil {
		wo.Invoiced = *in.Invoiced
	}
	if in.InvoicePaid != nil {
		wo.InvoicePaid = *in.InvoicePaid
	}
	if in.Paid != nil {
		wo.Paid = *in.Paid
	}
	if in.PaymentMethod != nil {
		wo.PaymentMethod = *in.PaymentMethod
	}
	if in.CompletionNotes != nil {
		wo.CompletionNotes = *in.CompletionNotes
	}
	if in.AdminNotes != nil {
		wo.AdminNotes = *in.AdminNotes
	}
	if in.Mileage != nil {
		wo.Mileage = *in.Mileage
	}
}

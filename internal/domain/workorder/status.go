package workorder

// Flags are the four ordered billing milestones of a work order. They
// are independent booleans, not a strict state machine; admins may
// revert any of them.
type Flags struct {
	JobComplete bool
	Invoiced    bool
	InvoicePaid bool
	Paid        bool
}

// Notification names the customer email a status update fires.
type Notification string

const (
	NotifyNone    Notification = ""
	NotifyInvoice Notification = "invoice"
	NotifyReceipt Notification = "receipt"
)

// Transition returns the single notification an update from old to new
// fires. Only false->true flips of Invoiced and InvoicePaid notify, and
// the invoice email takes precedence when both flip in one call. This
// mirrors the documented admin-console behavior: one action, at most
// one email.
func Transition(old, new Flags) Notification {
	if !old.Invoiced && new.Invoiced {
		return NotifyInvoice
	}
	if !old.InvoicePaid && new.InvoicePaid {
		return NotifyReceipt
	}
	return NotifyNone
}

// PaidChange reports how the paid timestamp must move: +1 to stamp it
// now, -1 to clear it, 0 to leave it alone.
func PaidChange(old, new Flags) int {
	switch {
	case !old.Paid && new.Paid:
		return 1
	case old.Paid && !new.Paid:
		return -1
	default:
		return 0
	}
}

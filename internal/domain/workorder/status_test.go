package workorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name string
		old  Flags
		new  Flags
		want Notification
	}{
		{
			name: "invoiced flip fires invoice",
			old:  Flags{JobComplete: true},
			new:  Flags{JobComplete: true, Invoiced: true},
			want: NotifyInvoice,
		},
		{
			name: "invoice paid flip fires receipt",
			old:  Flags{Invoiced: true},
			new:  Flags{Invoiced: true, InvoicePaid: true},
			want: NotifyReceipt,
		},
		{
			name: "both flips in one update fire invoice only",
			old:  Flags{},
			new:  Flags{Invoiced: true, InvoicePaid: true},
			want: NotifyInvoice,
		},
		{
			name: "already invoiced stays silent",
			old:  Flags{Invoiced: true},
			new:  Flags{Invoiced: true, JobComplete: true},
			want: NotifyNone,
		},
		{
			name: "reverting invoiced stays silent",
			old:  Flags{Invoiced: true, InvoicePaid: true},
			new:  Flags{},
			want: NotifyNone,
		},
		{
			name: "job complete alone stays silent",
			old:  Flags{},
			new:  Flags{JobComplete: true},
			want: NotifyNone,
		},
		{
			name: "paid alone stays silent",
			old:  Flags{},
			new:  Flags{Paid: true},
			want: NotifyNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.old, tt.new))
		})
	}
}

func TestPaidChange(t *testing.T) {
	assert.Equal(t, 1, PaidChange(Flags{}, Flags{Paid: true}))
	assert.Equal(t, -1, PaidChange(Flags{Paid: true}, Flags{}))
	assert.Equal(t, 0, PaidChange(Flags{Paid: true}, Flags{Paid: true}))
	assert.Equal(t, 0, PaidChange(Flags{}, Flags{Invoiced: true}))
}

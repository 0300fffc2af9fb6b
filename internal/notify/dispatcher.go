package notify

import (
	"context"
	"log"
)

// Dispatcher sends best-effort notifications off the request path. A
// full queue drops the notification rather than blocking a handler:
// the core write already succeeded and must stay succeeded.
type Dispatcher struct {
	sender Sender
	queue  chan job
}

type job struct {
	email *Email
	sms   *SMS
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan job, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for j := range d.queue {
		ctx := context.Background()
		var err error
		switch {
		case j.email != nil:
			err = d.sender.SendEmail(ctx, *j.email)
		case j.sms != nil:
			err = d.sender.SendSMS(ctx, *j.sms)
		}
		if err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) DispatchEmail(email Email) {
	select {
	case d.queue <- job{email: &email}:
	default:
		log.Println("notify queue full, dropping email")
	}
}

func (d *Dispatcher) DispatchSMS(sms SMS) {
	select {
	case d.queue <- job{sms: &sms}:
	default:
		log.Println("notify queue full, dropping sms")
	}
}

package notify

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"github.com/dgsoftwash/booking-api/internal/config"
)

// SMTPSender delivers email over plain SMTP AUTH. No SMS gateway is
// configured; the SMS body is mailed to the business inbox for manual
// forwarding until one is wired up.
type SMTPSender struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.BusinessFrom,
	}
}

func (s *SMTPSender) SendEmail(ctx context.Context, email Email) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, email.To, email.Subject, email.Body,
	)

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{email.To}, []byte(msg))
}

func (s *SMTPSender) SendSMS(ctx context.Context, sms SMS) error {
	return s.SendEmail(ctx, Email{
		To:      s.from,
		Subject: fmt.Sprintf("SMS for %s", sms.To),
		Body:    sms.Body,
	})
}

// LogSender is the no-SMTP fallback: every notification is logged and
// reported delivered. Keeps local development and tests offline.
type LogSender struct{}

func (LogSender) SendEmail(ctx context.Context, email Email) error {
	log.Printf("notify: email to=%s subject=%q", email.To, email.Subject)
	return nil
}

func (LogSender) SendSMS(ctx context.Context, sms SMS) error {
	log.Printf("notify: sms to=%s", sms.To)
	return nil
}

var (
	_ Sender = (*SMTPSender)(nil)
	_ Sender = LogSender{}
)

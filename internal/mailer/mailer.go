package mailer

import (
	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"
)

type SMTP struct {
	Host      string
	Port      int
	User      string
	Pass      string
	FromName  string
	FromEmail string
}

// Sender delivers a rendered email. Satisfied by Mailer; stubbed in
// tests.
type Sender interface {
	Send(to, subject, body string) error
}

type Mailer struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
}

func New(cfg SMTP) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "send email to %s", to)
	}
	return nil
}

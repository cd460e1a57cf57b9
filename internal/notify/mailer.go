package notify

import (
	"github.com/ShinMK-003/FoodOn/config"
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// Mailer sends plain-text mail. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(to, subject, body string) error
}

// SmtpMailer sends through the configured SMTP relay.
type SmtpMailer struct {
	cfg config.SmtpConfig
}

func NewSmtpMailer(cfg config.SmtpConfig) *SmtpMailer {
	return &SmtpMailer{cfg: cfg}
}

func (m *SmtpMailer) Send(to, subject, body string) error {
	if !m.cfg.Enable {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send mail")
	}
	return nil
}

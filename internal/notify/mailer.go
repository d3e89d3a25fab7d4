// Package notify delivers back-office email notifications. Delivery is
// best-effort: callers log failures and continue, a lost email never fails a
// business operation.
package notify

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/gmfurtado/rhpulse/config"
	"github.com/gmfurtado/rhpulse/internal/logger"
)

// Mailer sends a single plain-text notification.
type Mailer interface {
	Send(to, subject, body string) error
}

// dialerFactory is an indirection for unit testing; defaults to gomail.NewDialer.
var dialerFactory = func(host string, port int, user, password string) mailSender {
	return gomail.NewDialer(host, port, user, password)
}

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpMailer delivers through a plain SMTP relay via gomail.
type smtpMailer struct {
	cfg config.SMTPConfig
}

// NewMailer builds the mailer for the given configuration. When SMTP is
// disabled (local dev, CI) it returns a logging no-op so callers never need
// to branch.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if !cfg.Enabled {
		return &logMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := dialerFactory(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// logMailer records would-be emails in the log instead of sending them.
type logMailer struct{}

func (*logMailer) Send(to, subject, _ string) error {
	logger.L().Info().Str("to", to).Str("subject", subject).Msg("smtp disabled, notification logged only")
	return nil
}

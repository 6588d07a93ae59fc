package services

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/vke007/jarvis-private/internal/config"
)

var (
	ErrSMTPPasswordNotSet = errors.New("SMTP_PASSWORD is not set")
	ErrMailDelivery       = errors.New("mail delivery failed")
)

// Mailer sends a single message or fails; nothing is retried.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer submits mail through the configured SMTP relay with plain
// auth over the submission port.
type SMTPMailer struct {
	cfg *config.Config
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one plain-text message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.cfg.SMTPPassword == "" {
		return ErrSMTPPasswordNotSet
	}

	addr := m.cfg.SMTPServer + ":" + m.cfg.SMTPPort
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPServer)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		m.cfg.SMTPUser, to, subject, body,
	))

	if err := smtp.SendMail(addr, auth, m.cfg.SMTPUser, []string{to}, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	return nil
}

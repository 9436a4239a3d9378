package notify

import (
	"fmt"
	"net/smtp"

	"github.com/pbudlong/InstaGift/config"
)

type mailer struct {
	host     string
	port     string
	from     string
	password string
}

func newMailer(cfg config.Config) *mailer {
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" || cfg.SMTPPassword == "" {
		return nil
	}
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

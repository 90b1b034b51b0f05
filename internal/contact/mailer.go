package contact

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
)

// SMTPConfig holds the mail server settings for the smtp driver.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Mailer delivers submissions as plain-text email.
type Mailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg SMTPConfig) *Mailer {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// Message renders the email for a submission. Header values are stripped of
// line breaks so a visitor cannot inject headers.
func (m *Mailer) Message(sub Submission) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(sub.Subject))
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Submission %s
`, sub.Name, sub.Email, sub.Subject, sub.Message, sub.ID)

	return []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(sub.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// Send mails the submission. A filled botcheck is dropped silently.
func (m *Mailer) Send(ctx context.Context, sub Submission) error {
	if m.cfg.User == "" || m.cfg.Pass == "" || m.cfg.To == "" {
		return ErrNotConfigured
	}
	if sub.Botcheck != "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.To}, m.Message(sub)); err != nil {
		return errors.Wrap(err, "failed to send contact email")
	}
	return nil
}

func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

package notifications

import (
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
)

// SMTPMailer implements domain.Mailer over plain SMTP.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	sender   string
}

// NewSMTPMailer creates a new SMTP mailer. With an empty host the mailer
// logs messages instead of dialing, so the service stays usable in
// development without an SMTP account.
func NewSMTPMailer(host, port, username, password, sender string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		sender:   sender,
	}
}

// Send implements domain.Mailer
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.host == "" {
		slog.Info("smtp not configured, logging mail instead",
			"to", to, "subject", subject)
		return nil
	}

	addr := net.JoinHostPort(m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	var msg strings.Builder
	msg.WriteString("From: " + m.sender + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	if err := smtp.SendMail(addr, auth, m.sender, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email via %s: %w", addr, err)
	}
	return nil
}

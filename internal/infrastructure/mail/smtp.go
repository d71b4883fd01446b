package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"lendhub-backend/pkg/id"
)

// SMTPMailer sends HTML email through a plain SMTP relay. The stdlib client
// is enough here: the transport is a single Send call behind the
// notification usecase's Mailer port.
type SMTPMailer struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

func NewSMTPMailer(addr, from, username, password string) *SMTPMailer {
	m := &SMTPMailer{addr: addr, from: from}
	if username != "" {
		host := addr
		if i := strings.LastIndex(addr, ":"); i >= 0 {
			host = addr[:i]
		}
		m.auth = smtp.PlainAuth("", username, password, host)
	}
	return m
}

// Send delivers one HTML message and returns a locally generated message id.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	msgID := id.NewID32()
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"Message-ID: <" + msgID + "@lendhub>",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
		html,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return msgID, nil
}

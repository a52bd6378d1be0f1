package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"clubsite/internal/model"
)

// Notifier announces new contact submissions. Delivery is best effort: the
// submission is already persisted when the notifier runs, and failures are
// only logged by the caller.
type Notifier interface {
	NotifySubmission(ctx context.Context, submission *model.ContactSubmission) error
}

// SMTPNotifier sends notifications over plain SMTP with optional AUTH.
type SMTPNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewSMTPNotifier creates a notifier for the given SMTP server.
func NewSMTPNotifier(host string, port int, username, password, from, to string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// NotifySubmission sends a plain-text summary of the submission.
func (n *SMTPNotifier) NotifySubmission(ctx context.Context, submission *model.ContactSubmission) error {
	addr := fmt.Sprintf("%s:%d", n.host, n.port)

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	msg := buildMessage(n.from, n.to, submission)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, n.from, []string{n.to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send notification: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from, to string, submission *model.ContactSubmission) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: New Contact Form Submission - %s\r\n", submission.Name)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", submission.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", submission.Email)
	fmt.Fprintf(&b, "\r\n%s\r\n", submission.Message)
	fmt.Fprintf(&b, "\r\nSubmitted at: %s\r\n", submission.CreatedAt.Format(time.RFC1123))
	return []byte(b.String())
}

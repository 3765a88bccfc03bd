package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"customer-hub.backend/internal/config"
)

// Mailer sends customer notification emails over SMTP
type Mailer struct {
	cfg config.SMTPConfig
}

var dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
	return d.DialAndSend(m)
}

// NewMailer creates a new SMTP mailer
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendRegistrationEmail sends the welcome email after registration.
// Callers treat this as best-effort and must not fail registration on error.
func (m *Mailer) SendRegistrationEmail(ctx context.Context, email, firstName, password string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome! Your account has been created.\n\nYour login password is: %s\n\nPlease keep it safe.",
		firstName, password,
	)
	return m.send(ctx, email, "Welcome aboard", body)
}

// SendAccountDeletionEmail notifies a customer that their account was deleted
func (m *Mailer) SendAccountDeletionEmail(ctx context.Context, email, firstName string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account has been deleted. We are sorry to see you go.",
		firstName,
	)
	return m.send(ctx, email, "Account deleted", body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialAndSend(d, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

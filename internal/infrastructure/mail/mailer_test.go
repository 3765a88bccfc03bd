package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"customer-hub.backend/internal/config"
)

func newTestMailer() *Mailer {
	return NewMailer(config.SMTPConfig{
		Host:   "smtp.example.com",
		Port:   465,
		User:   "noreply@example.com",
		Sender: "noreply@example.com",
	})
}

func TestMailer_SendRegistrationEmail(t *testing.T) {
	orig := dialAndSend
	defer func() { dialAndSend = orig }()

	var sent *gomail.Message
	dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
		sent = m
		return nil
	}

	m := newTestMailer()
	err := m.SendRegistrationEmail(context.Background(), "amara@mail.com", "Amara", "pw123")
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"amara@mail.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Welcome aboard"}, sent.GetHeader("Subject"))
}

func TestMailer_SendAccountDeletionEmail_Error(t *testing.T) {
	orig := dialAndSend
	defer func() { dialAndSend = orig }()

	dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
		return errors.New("smtp down")
	}

	m := newTestMailer()
	err := m.SendAccountDeletionEmail(context.Background(), "amara@mail.com", "Amara")
	assert.Error(t, err)
}

func TestMailer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newTestMailer()
	err := m.SendAccountDeletionEmail(ctx, "amara@mail.com", "Amara")
	assert.ErrorIs(t, err, context.Canceled)
}

package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutKeyIsNoop(t *testing.T) {
	m := New("", "no-reply@petbazaar.app", "")
	assert.IsType(t, Noop{}, m)
	assert.NoError(t, m.SendWelcome(context.Background(), "Mia", "mia@example.com"))
}

func TestSendWelcome(t *testing.T) {
	var sent *mail.SGMailV3
	s := &SendGrid{
		from: mail.NewEmail(fromName, "no-reply@petbazaar.app"),
		send: func(msg *mail.SGMailV3) error {
			sent = msg
			return nil
		},
	}

	require.NoError(t, s.SendWelcome(context.Background(), "Mia", "mia@example.com"))
	require.NotNil(t, sent)
	assert.Equal(t, "Welcome to PetBazaar", sent.Subject)
	require.Len(t, sent.Personalizations, 1)
	assert.Equal(t, "mia@example.com", sent.Personalizations[0].To[0].Address)
	assert.Equal(t, "no-reply@petbazaar.app", sent.From.Address)
}

func TestSendWelcomeError(t *testing.T) {
	s := &SendGrid{
		from: mail.NewEmail(fromName, "no-reply@petbazaar.app"),
		send: func(msg *mail.SGMailV3) error { return errors.New("boom") },
	}

	err := s.SendWelcome(context.Background(), "Mia", "mia@example.com")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mia@example.com")
}

func TestSendWelcomeCancelledContext(t *testing.T) {
	called := false
	s := &SendGrid{send: func(msg *mail.SGMailV3) error { called = true; return nil }}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.SendWelcome(ctx, "Mia", "mia@example.com"))
	assert.False(t, called)
}

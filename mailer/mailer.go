package mailer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	templates "github.com/petbazaar/petbazaar-api/templates/html"
)

const fromName = "PetBazaar"

// Mailer sends the transactional emails of the api
type Mailer interface {
	SendWelcome(ctx context.Context, name, email string) error
}

// Noop drops every email. It is used when no sendgrid key is configured.
type Noop struct{}

// SendWelcome does nothing
func (Noop) SendWelcome(ctx context.Context, name, email string) error {
	return nil
}

type sendFunc func(msg *mail.SGMailV3) error

// SendGrid delivers emails through the sendgrid api
type SendGrid struct {
	from    *mail.Email
	baseURL string
	send    sendFunc
}

// New returns a sendgrid mailer, or Noop when apiKey is empty
func New(apiKey, from, baseURL string) Mailer {
	if apiKey == "" {
		zap.S().Info("SENDGRID_API_KEY is not set, emails are disabled")
		return Noop{}
	}
	client := sendgrid.NewSendClient(apiKey)
	return &SendGrid{
		from:    mail.NewEmail(fromName, from),
		baseURL: baseURL,
		send: func(msg *mail.SGMailV3) error {
			resp, err := client.Send(msg)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 300 {
				return errors.Errorf("sendgrid responded with status %d", resp.StatusCode)
			}
			return nil
		},
	}
}

// SendWelcome emails a newly signed up user
func (s *SendGrid) SendWelcome(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	subject := "Welcome to PetBazaar"
	to := mail.NewEmail(name, email)
	plain := "Hi " + name + ", your PetBazaar account is ready."
	msg := mail.NewSingleEmail(s.from, subject, to, plain, templates.RenderWelcomeEmail(name, s.baseURL))
	return errors.Wrapf(s.send(msg), "failed to send welcome email to %s", email)
}

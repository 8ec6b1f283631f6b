package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Provider delivers one rendered message.
type Provider interface {
	Send(ctx context.Context, to Recipient, subject, plain, html string) error
}

type Recipient struct {
	Name  string
	Email string
}

// sendClient is the part of *sendgrid.Client the provider uses.
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridProvider sends mail through the SendGrid v3 API.
type SendGridProvider struct {
	from   *mail.Email
	client sendClient
}

var _ Provider = (*SendGridProvider)(nil)

func NewSendGridProvider(apiKey, fromEmail, fromName string) *SendGridProvider {
	return &SendGridProvider{
		from:   mail.NewEmail(fromName, fromEmail),
		client: sendgrid.NewSendClient(apiKey),
	}
}

func (p *SendGridProvider) Send(ctx context.Context, to Recipient, subject, plain, html string) error {
	message := mail.NewSingleEmail(p.from, subject, mail.NewEmail(to.Name, to.Email), plain, html)

	response, err := p.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid error: %w", err)
	}
	// SendGrid answers 202 on success
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

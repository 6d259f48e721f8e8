package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/red-stick-digital/brga-backend/pkg/config"
)

// Message is one outbound transactional email.
type Message struct {
	ToName  string
	ToEmail string
	Subject string
	HTML    string
	Text    string
}

// Sender abstracts the delivery provider so services and tests can swap it.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Client delivers mail through SendGrid using the configured from identity.
type Client struct {
	sg        *sendgrid.Client
	fromName  string
	fromEmail string
}

// New constructs a SendGrid-backed mail client.
func New(cfg config.MailerConfig) (*Client, error) {
	if strings.TrimSpace(cfg.SendgridAPIKey) == "" {
		return nil, fmt.Errorf("sendgrid api key is required")
	}
	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, fmt.Errorf("from email is required")
	}
	return &Client{
		sg:        sendgrid.NewSendClient(cfg.SendgridAPIKey),
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
	}, nil
}

// Send delivers the message and returns the provider message id.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if strings.TrimSpace(msg.ToEmail) == "" {
		return "", fmt.Errorf("recipient email is required")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return "", fmt.Errorf("subject is required")
	}

	from := sgmail.NewEmail(c.fromName, c.fromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	email := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)

	resp, err := c.sg.SendWithContext(ctx, email)
	if err != nil {
		return "", fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}

	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}

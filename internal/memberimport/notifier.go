package memberimport

import (
	"context"
	"fmt"
	"html"

	"github.com/red-stick-digital/brga-backend/pkg/config"
	"github.com/red-stick-digital/brga-backend/pkg/mailer"
)

// WelcomeNotifier sends the welcome email carrying the temporary credential.
type WelcomeNotifier struct {
	sender mailer.Sender
	cfg    config.MailerConfig
}

// NewWelcomeNotifier constructs a notifier over the provided sender.
func NewWelcomeNotifier(sender mailer.Sender, cfg config.MailerConfig) *WelcomeNotifier {
	return &WelcomeNotifier{sender: sender, cfg: cfg}
}

// Notify sends the welcome message. Callers treat a send failure as a
// warning on an otherwise successful migration, not a failure.
func (n *WelcomeNotifier) Notify(ctx context.Context, email, displayName, tempPassword string) error {
	greeting := displayName
	if greeting == "" {
		greeting = "Member"
	}

	htmlBody := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your member portal account is ready. Sign in with:</p>
<p>Email: <strong>%s</strong><br>Temporary password: <strong>%s</strong></p>
<p>Please change your password after your first login.</p>
<p><a href="%s">%s</a></p>`,
		html.EscapeString(greeting),
		html.EscapeString(email),
		html.EscapeString(tempPassword),
		n.cfg.PortalURL,
		n.cfg.PortalURL,
	)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nYour member portal account is ready. Sign in with:\n\nEmail: %s\nTemporary password: %s\n\nPlease change your password after your first login.\n\n%s\n",
		greeting, email, tempPassword, n.cfg.PortalURL,
	)

	_, err := n.sender.Send(ctx, mailer.Message{
		ToName:  displayName,
		ToEmail: email,
		Subject: "Welcome to the member portal",
		HTML:    htmlBody,
		Text:    textBody,
	})
	return err
}

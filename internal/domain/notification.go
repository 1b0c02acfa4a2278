package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// FriendRequestEmailData holds data for the friend-request notification.
type FriendRequestEmailData struct {
	Name       string
	FromName   string
	FromHandle string
}

// FriendAcceptEmailData holds data for the request-accepted notification.
type FriendAcceptEmailData struct {
	Name     string
	ByName   string
	ByHandle string
}

// WelcomeEmailData holds data for the welcome notification.
type WelcomeEmailData struct {
	Name   string
	Handle string
}

// Notifier is the fire-and-forget sink for status notifications. Delivery
// failures are logged by implementations and never propagated to callers.
type Notifier interface {
	FriendRequestReceived(ctx context.Context, to, from *User)
	FriendRequestAccepted(ctx context.Context, to, by *User)
	Welcome(ctx context.Context, to *User)
}

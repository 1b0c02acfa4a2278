package services

import (
	"context"
	"log"

	"encoresocial/internal/domain"
)

type emailNotifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailNotifier returns a Notifier that delivers over the given Mailer
// and template renderer. Delivery failures are logged and swallowed; a lost
// notification must never fail the operation that triggered it.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.Notifier {
	return &emailNotifier{mailer: mailer, renderer: renderer}
}

func (n *emailNotifier) send(template, to string, data any) {
	subject, htmlBody, textBody, err := n.renderer.Render(template, data)
	if err != nil {
		log.Printf("[EMAIL] render %s template: %v", template, err)
		return
	}
	if err := n.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		log.Printf("[EMAIL] send %s to %s: %v", template, to, err)
		return
	}
	log.Printf("[EMAIL] %s sent to %s", template, to)
}

func (n *emailNotifier) FriendRequestReceived(ctx context.Context, to, from *domain.User) {
	if to == nil || from == nil {
		return
	}
	n.send("friend_request", to.Email, &domain.FriendRequestEmailData{
		Name:       to.Name,
		FromName:   from.Name,
		FromHandle: from.Handle,
	})
}

func (n *emailNotifier) FriendRequestAccepted(ctx context.Context, to, by *domain.User) {
	if to == nil || by == nil {
		return
	}
	n.send("friend_accept", to.Email, &domain.FriendAcceptEmailData{
		Name:     to.Name,
		ByName:   by.Name,
		ByHandle: by.Handle,
	})
}

func (n *emailNotifier) Welcome(ctx context.Context, to *domain.User) {
	if to == nil {
		return
	}
	n.send("welcome", to.Email, &domain.WelcomeEmailData{
		Name:   to.Name,
		Handle: to.Handle,
	})
}

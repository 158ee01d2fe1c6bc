package services

import (
	"context"
	"fmt"
	"log/slog"

	"explorewithme/internal/domain"
)

type emailNotifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailNotifier returns a Notifier that renders templates and sends them with mailer.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.Notifier {
	return &emailNotifier{mailer: mailer, renderer: renderer, logger: logger}
}

// NotifyEventModerated sends the "event_moderated" template to the initiator.
func (n *emailNotifier) NotifyEventModerated(ctx context.Context, data *domain.EventModeratedEmailData) error {
	if data == nil {
		return fmt.Errorf("event moderated data is nil")
	}
	return n.send(ctx, "event_moderated", data.Email, data)
}

// NotifyRequestStatus sends the "request_status" template to the requester.
func (n *emailNotifier) NotifyRequestStatus(ctx context.Context, data *domain.RequestStatusEmailData) error {
	if data == nil {
		return fmt.Errorf("request status data is nil")
	}
	return n.send(ctx, "request_status", data.Email, data)
}

func (n *emailNotifier) send(ctx context.Context, template, to string, data any) error {
	if to == "" {
		return fmt.Errorf("%s: recipient address is empty", template)
	}
	subject, htmlBody, textBody, err := n.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("render %s template: %w", template, err)
	}
	if err := n.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send %s email: %w", template, err)
	}
	n.logger.InfoContext(ctx, "email sent", "template", template, "to", to)
	return nil
}

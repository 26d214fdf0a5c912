package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventdesk/internal/domain"
)

type emailNotifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailNotifier returns a ScheduleNotifier that uses the given Mailer and template renderer.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.ScheduleNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailNotifier{mailer: mailer, renderer: renderer, logger: logger}
}

// SessionRescheduled sends the "session_rescheduled" template.
func (n *emailNotifier) SessionRescheduled(ctx context.Context, data *domain.ScheduleChangeEmailData) error {
	return n.send(ctx, "session_rescheduled", data)
}

// SessionCancelled sends the "session_cancelled" template.
func (n *emailNotifier) SessionCancelled(ctx context.Context, data *domain.ScheduleChangeEmailData) error {
	return n.send(ctx, "session_cancelled", data)
}

func (n *emailNotifier) send(ctx context.Context, templateName string, data *domain.ScheduleChangeEmailData) error {
	if data == nil {
		return fmt.Errorf("%s email data is nil", templateName)
	}
	subject, htmlBody, textBody, err := n.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := n.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	n.logger.InfoContext(ctx, "schedule email sent", "template", templateName, "to", data.Email)
	return nil
}

package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ScheduleChangeEmailData holds data for the rescheduled and cancelled session emails.
type ScheduleChangeEmailData struct {
	Email        string
	SpeakerName  string
	SessionTitle string
	Venue        string
	OldStart     time.Time
	OldEnd       time.Time
	NewStart     time.Time
	NewEnd       time.Time
}

// ScheduleNotifier tells speakers about changes to their sessions.
type ScheduleNotifier interface {
	SessionRescheduled(ctx context.Context, data *ScheduleChangeEmailData) error
	SessionCancelled(ctx context.Context, data *ScheduleChangeEmailData) error
}

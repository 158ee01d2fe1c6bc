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

// EventModeratedEmailData holds data for the mail sent to an initiator after an admin decision.
type EventModeratedEmailData struct {
	Email     string
	Name      string
	EventID   int64
	Title     string
	State     EventState
	EventDate string
}

// RequestStatusEmailData holds data for the mail sent to a requester when an
// initiator confirms or rejects their request.
type RequestStatusEmailData struct {
	Email      string
	Name       string
	RequestID  int64
	EventID    int64
	EventTitle string
	Status     RequestStatus
}

// Notifier sends domain notifications. Implementations are best effort:
// callers log the error and carry on.
type Notifier interface {
	NotifyEventModerated(ctx context.Context, data *EventModeratedEmailData) error
	NotifyRequestStatus(ctx context.Context, data *RequestStatusEmailData) error
}

package contracts

import (
	"context"

	"dentassist-service/internal/pkg/dto/requests"
)

// MailerService delivers an email synchronously over SMTP.
type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}

// MailerQueue hands an email off to the message broker for async delivery.
type MailerQueue interface {
	PublishEmail(ctx context.Context, payload *requests.EmailPayload) error
}

package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/drivers/mailer"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"

	"github.com/sirupsen/logrus"
)

type smtpMailerService struct {
	Client *mailer.SMTPClient
	Log    *logrus.Logger
}

func NewSMTPMailerService(client *mailer.SMTPClient, log *logrus.Logger) contracts.MailerService {
	return &smtpMailerService{
		Client: client,
		Log:    log,
	}
}

func (svc *smtpMailerService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = svc.Client.EmailSender
	}

	format := constvars.EmailSendBasicEmailSubjectFormat
	if payload.HTML {
		format = constvars.EmailSendHTMLSubjectFormat
	}

	to := strings.Join(payload.To, ",")
	msg := []byte(fmt.Sprintf(format, to, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)

	if err := smtp.SendMail(addr, svc.Client.Auth, from, payload.To, msg); err != nil {
		svc.Log.WithError(err).WithField("to", to).Error("failed to send email")
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.WithField("to", to).WithField("subject", payload.Subject).Info("email sent")
	return nil
}

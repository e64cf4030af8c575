package service

import (
	"context"
	"fmt"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds a SendGrid-backed mailer. With an empty API key
// every send becomes a logged no-op, which keeps local development working
// without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendRentalRequestConfirmation(ctx context.Context, toEmail, toName, equipmentName string) error {
	subject := "Rental request received"
	body := fmt.Sprintf("Hello %s,\n\nWe received your rental request for %s. It is now pending review; you will be notified once it is processed.\n\nEquipRent", toName, equipmentName)
	return s.send(ctx, toEmail, toName, subject, body)
}

func (s *emailService) SendRentalStatusUpdate(ctx context.Context, toEmail, toName, equipmentName string, status domain.RentalStatus) error {
	subject := fmt.Sprintf("Rental request %s", status)
	body := fmt.Sprintf("Hello %s,\n\nYour rental request for %s is now %s.\n\nEquipRent", toName, equipmentName, status)
	return s.send(ctx, toEmail, toName, subject, body)
}

func (s *emailService) SendRepairCompleted(ctx context.Context, toEmail, toName, equipmentName string) error {
	subject := "Equipment repaired"
	body := fmt.Sprintf("Hello %s,\n\nThe equipment you reported (%s) has been repaired and is available again.\n\nEquipRent", toName, equipmentName)
	return s.send(ctx, toEmail, toName, subject, body)
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("email sending disabled, dropping message", "to", toEmail, "subject", subject)
		return nil
	}

	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "send", err, "to", toEmail)
	return err
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"autoloc-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed mailer. With an empty API key
// the service logs each message instead of sending, which keeps dev and test
// environments quiet.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Info("Email sending disabled, dropping message", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, to, clientName, vehicleName, startDate, endDate string, amount float64) error {
	subject := fmt.Sprintf("Reservation confirmed: %s", vehicleName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation for %s from %s to %s is recorded.\nAgreed price: %.2f.\n\nSee you soon!",
		clientName, vehicleName, startDate, endDate, amount)
	return s.send(ctx, to, clientName, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, to, clientName, vehicleName, endDate string) error {
	subject := fmt.Sprintf("Return reminder: %s", vehicleName)
	body := fmt.Sprintf(
		"Hello %s,\n\nA reminder that %s is due back on %s.\n\nThank you!",
		clientName, vehicleName, endDate)
	return s.send(ctx, to, clientName, subject, body)
}

func (s *emailService) SendOwnerStatement(ctx context.Context, to, ownerName, vehicleName string, year int, month time.Month, total float64) error {
	subject := fmt.Sprintf("Owner statement %04d-%02d: %s", year, int(month), vehicleName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour payout for %s in %s %d totals %.2f.\nThe detailed statement is available in the app.\n\nBest regards",
		ownerName, vehicleName, month, year, total)
	return s.send(ctx, to, ownerName, subject, body)
}

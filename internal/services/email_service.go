package services

import (
	"fmt"
	"time"

	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const appDisplayName = "House Hunt Kenya"

type EmailService interface {
	SendWelcomeEmail(toEmail, firstName string) error
	SendPasswordResetEmail(toEmail, firstName, resetURL string) error
	SendPaymentConfirmationEmail(toEmail, firstName, description string, amount float64, reference string) error
}

type emailService struct {
	cfg            *config.Config
	sendgridClient *sendgrid.Client
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{
		cfg:            cfg,
		sendgridClient: sendgrid.NewSendClient(cfg.SendGridAPIKey),
	}
}

func (s *emailService) SendWelcomeEmail(toEmail, firstName string) error {
	intro := "Your account is ready. Browse rental listings across Kenya, save your favorites and message landlords directly."
	html := fmt.Sprintf(welcomeEmailHTML, firstName, intro, s.cfg.FrontendURL, time.Now().Year())
	plain := fmt.Sprintf("Hi %s, welcome to %s! Visit %s to get started.", firstName, appDisplayName, s.cfg.FrontendURL)
	return s.send(toEmail, appDisplayName+" - Welcome", plain, html)
}

func (s *emailService) SendPasswordResetEmail(toEmail, firstName, resetURL string) error {
	html := fmt.Sprintf(passwordResetEmailHTML, firstName, resetURL, time.Now().Year())
	plain := fmt.Sprintf("Hi %s, reset your password here: %s (link expires in 1 hour)", firstName, resetURL)
	return s.send(toEmail, appDisplayName+" - Password Reset", plain, html)
}

func (s *emailService) SendPaymentConfirmationEmail(toEmail, firstName, description string, amount float64, reference string) error {
	html := fmt.Sprintf(paymentConfirmationEmailHTML, firstName, description, amount, reference, time.Now().Year())
	plain := fmt.Sprintf("Hi %s, we received your payment of KES %.2f (ref %s). %s", firstName, amount, reference, description)
	return s.send(toEmail, appDisplayName+" - Payment Received", plain, html)
}

func (s *emailService) send(toEmail, subject, plain, html string) error {
	from := mail.NewEmail(appDisplayName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	if s.cfg.SendGridSandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	_, sendErr := s.sendgridClient.Send(message)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send email to %s via SendGrid", toEmail)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}

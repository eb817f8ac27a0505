package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client       *resend.Client
	fromEmail    string
	supportEmail string
	isDev        bool
	appURL       string
	appName      string
}

func NewEmailService(apiKey, fromEmail, supportEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:       client,
		fromEmail:    fromEmail,
		supportEmail: supportEmail,
		isDev:        isDev,
		appURL:       appURL,
		appName:      appName,
	}
}

// send delivers an email, or logs it in development mode.
func (s *EmailService) send(emailType, to, subject, body string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", emailType, "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", emailType, "to", to)
	}
	return err
}

func (s *EmailService) SendMagicLinkEmail(email, token, name string) error {
	magicURL := fmt.Sprintf("%s/auth/magic-link/%s", s.appURL, token)
	subject, body := magicLinkEmailTemplate(magicURL, s.appName)
	return s.send("magic_link", email, subject, body)
}

func (s *EmailService) SendWelcomeEmail(email, name string) error {
	dashboardURL := fmt.Sprintf("%s/dashboard", s.appURL)
	subject, body := welcomeEmailTemplate(name, dashboardURL, s.appName)
	return s.send("welcome", email, subject, body)
}

func (s *EmailService) SendEmailChangeVerification(newEmail, token, userName string) error {
	verifyURL := fmt.Sprintf("%s/auth/verify-email-change/%s", s.appURL, token)
	subject, body := emailChangeVerificationTemplate(userName, verifyURL, s.appName)
	return s.send("email_change_verification", newEmail, subject, body)
}

func (s *EmailService) SendEmailChangeNotification(oldEmail, newEmail, userName string) error {
	subject, body := emailChangeNotificationTemplate(userName, newEmail, s.appName)
	return s.send("email_change_notification", oldEmail, subject, body)
}

func (s *EmailService) SendAccountDeletedEmail(email, name string) error {
	subject, body := accountDeletedEmailTemplate(name, s.appName)
	return s.send("account_deleted", email, subject, body)
}

// SendWellnessFollowUpEmail is sent when a GAD-7 check-in crosses the
// follow-up threshold. It points the student at counseling resources,
// it never includes the score itself.
func (s *EmailService) SendWellnessFollowUpEmail(email, name string) error {
	consultURL := fmt.Sprintf("%s/consultations", s.appURL)
	subject, body := wellnessFollowUpEmailTemplate(name, consultURL, s.supportEmail, s.appName)
	return s.send("wellness_follow_up", email, subject, body)
}

func (s *EmailService) SendConsultationConfirmedEmail(email, name, topic, schedule string) error {
	subject, body := consultationConfirmedEmailTemplate(name, topic, schedule, s.appName)
	return s.send("consultation_confirmed", email, subject, body)
}

func (s *EmailService) SendPaymentReceiptEmail(email, name, orderID string, amount int64) error {
	subject, body := paymentReceiptEmailTemplate(name, orderID, amount, s.appName)
	return s.send("payment_receipt", email, subject, body)
}

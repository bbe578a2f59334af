// utils/email.go
package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/YuliiaIvakhnenko/flower-shop/config"
	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

// EmailService sends transactional mail through SendGrid. A service built
// without an API key becomes a no-op so local setups run without mail
// credentials.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(cfg config.EmailConfig) *EmailService {
	if cfg.APIKey == "" {
		return &EmailService{}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(cfg.APIKey),
		sender: cfg.Sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}

	from := mail.NewEmail("Flower Shop", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation to the customer.
func (es *EmailService) SendOrderConfirmationEmail(order models.Order) error {
	subject := "Order Confirmation - Flower Shop"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your order (ID: %s)! It will be delivered to <strong>%s</strong>.<br><br>Total: <strong>$%.2f</strong><br><br>Thank you for shopping with us!",
		order.ID.Hex(),
		order.Address,
		order.TotalPrice,
	)
	return es.SendEmail(order.Email, subject, htmlContent)
}

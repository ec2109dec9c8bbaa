package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service sends transactional email through SendGrid. An unconfigured
// service (empty API key) drops messages silently so local setups do not
// need an account.
type Service struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewService(apiKey, fromEmail, fromName string) *Service {
	if apiKey == "" || fromEmail == "" {
		return &Service{}
	}

	return &Service{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendWelcome delivers the post-registration greeting.
func (s *Service) SendWelcome(_ context.Context, toEmail, name string) error {
	if s.client == nil {
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(name, toEmail)

	subject := "Welcome to Tienda"
	plain := fmt.Sprintf("Hi %s, your account is ready. Happy shopping!", name)
	html := fmt.Sprintf("<p>Hi %s, your account is ready. Happy shopping!</p>", name)

	message := mail.NewSingleEmail(from, subject, to, plain, html)

	response, err := s.client.Send(message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender sends the welcome email through Resend. A nil sender is
// valid everywhere; email simply stays off when no API key is configured.
type ResendEmailSender struct {
	client *resend.Client
	from   string
}

func NewResendEmailSender(apiKey string, from string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return nil
	}
	return &ResendEmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendEmailSender) SendWelcomeEmail(ctx context.Context, email string, name string) error {
	if name == "" {
		name = "vecino"
	}
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email},
		Subject: "Bienvenido a Mercado Vecino",
		Html: fmt.Sprintf("<p>Hola %s,</p><p>Tu cuenta en Mercado Vecino fue creada exitosamente. "+
			"Ya puedes iniciar sesión y explorar los productos de tu barrio.</p>", name),
		Text: fmt.Sprintf("Hola %s, tu cuenta en Mercado Vecino fue creada exitosamente.", name),
	}
	_, err := s.client.Emails.Send(params)
	return err
}

package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"gestione-turni/internal/config"
)

type Service interface {
	SendSwapProposed(ctx context.Context, toEmail, recipientName, message string) error
	SendSwapResolved(ctx context.Context, toEmail, recipientName string, approved bool) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

var bodyTmpl = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #1f2937;">
    <h2>{{.Title}}</h2>
    <p>Hi {{.Name}},</p>
    <p>{{.Body}}</p>
    <p><a href="{{.Link}}">Open the shift board</a></p>
  </body>
</html>`))

type bodyData struct {
	Title string
	Name  string
	Body  string
	Link  string
}

func (s *service) sendEmail(toEmail, subject string, data bodyData) error {
	var body bytes.Buffer
	if err := bodyTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Gestione Turni <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendSwapProposed(ctx context.Context, toEmail, recipientName, message string) error {
	return s.sendEmail(toEmail, "New shift swap request", bodyData{
		Title: "New shift swap request",
		Name:  recipientName,
		Body:  message,
		Link:  fmt.Sprintf("http://%s/notifications", s.cfg.Domain),
	})
}

func (s *service) SendSwapResolved(ctx context.Context, toEmail, recipientName string, approved bool) error {
	subject := "Your swap request was rejected"
	body := "Your shift swap request was rejected. The shift stays yours."
	if approved {
		subject = "Your swap request was approved"
		body = "Your shift swap request was approved. The shift has been reassigned."
	}
	return s.sendEmail(toEmail, subject, bodyData{
		Title: subject,
		Name:  recipientName,
		Body:  body,
		Link:  fmt.Sprintf("http://%s/calendar", s.cfg.Domain),
	})
}

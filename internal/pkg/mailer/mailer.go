package mailer

import (
	"Orbit/internal/api/config"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Mailer 通过邮件网关的 HTTP API 发送事务邮件
type Mailer struct {
	client *resty.Client
	cfg    config.MailConfig
}

func New(cfg config.MailConfig) *Mailer {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetBaseURL(cfg.URL).
		SetHeader("Authorization", "Bearer "+cfg.ApiKey)

	return &Mailer{client: client, cfg: cfg}
}

type sendRequest struct {
	From    address   `json:"from"`
	To      []address `json:"to"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Send 发送一封 HTML 邮件
func (s *Mailer) Send(ctx context.Context, to string, subject string, html string) error {
	body := sendRequest{
		From:    address{Email: s.cfg.Sender, Name: s.cfg.SenderName},
		To:      []address{{Email: to}},
		Subject: subject,
		HTML:    html,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/send")
	if err != nil {
		return errors.Wrap(err, "failed to call mail gateway")
	}
	if resp.IsError() {
		return errors.Errorf("mail gateway returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// SendToAdmin 发送站内管理邮件
func (s *Mailer) SendToAdmin(ctx context.Context, subject string, html string) error {
	return s.Send(ctx, s.cfg.AdminEmail, subject, html)
}

package mailer

import (
	"fmt"

	"krishisetu/pkg/utils"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Sender delivers notification mail. Delivery is best-effort: callers fire it
// from a goroutine and failures are logged, never propagated.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	cfg utils.EmailConfig
	log *zap.Logger
}

func NewSMTPSender(cfg utils.EmailConfig, log *zap.Logger) Sender {
	return &smtpSender{
		cfg: cfg,
		log: log.With(zap.String("component", "mailer")),
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	// Without SMTP credentials, log the mail instead of failing. Keeps OTP
	// visible during development.
	if s.cfg.Host == "" || s.cfg.User == "" {
		s.log.Info("Mock email (no SMTP credentials)",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.String("body", body),
		)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from())
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}

func (s *smtpSender) from() string {
	if s.cfg.From != "" {
		return s.cfg.From
	}
	return "noreply@krishisetu.com"
}

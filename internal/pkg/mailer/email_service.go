package mailer

import (
	"fmt"
	"html"

	"degrondvraag-be/internal/config"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	// SendFeedback delivers one visitor feedback message to the inbox
	// configured for the site.
	SendFeedback(replyTo, message string) error
}

type emailService struct {
	dialer *gomail.Dialer
	cfg    *config.Config
}

func NewEmailService(cfg *config.Config) IEmailService {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password)
	return &emailService{dialer: dialer, cfg: cfg}
}

func (s *emailService) SendFeedback(replyTo, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.SMTP.Email, s.cfg.SMTP.SenderName))
	m.SetHeader("To", s.cfg.SMTP.FeedbackInbox)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", "Feedback via degrondvraag.com")
	m.SetBody("text/html", fmt.Sprintf(
		"<p><strong>Van:</strong> %s</p><p>%s</p>",
		html.EscapeString(replyTo),
		html.EscapeString(message),
	))

	return s.dialer.DialAndSend(m)
}

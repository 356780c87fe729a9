package email

import (
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"jobportal/internal/config"
)

// Notifier delivers best-effort emails. Failures are logged and swallowed;
// a notification must never roll back the state change that triggered it.
type Notifier interface {
	Send(recipient, subject, body string)
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger *log.Logger
}

// NewNotifier returns an SMTP-backed notifier, or a no-op one when SMTP
// is not configured so local setups work without a mail server.
func NewNotifier(cfg config.SMTPConfig, logger *log.Logger) Notifier {
	if cfg.Host == "" {
		if logger != nil {
			logger.Printf("[Email] SMTP not configured, notifications disabled")
		}
		return NoopNotifier{}
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 {
		port = 587
	}

	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (n *SMTPNotifier) Send(recipient, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		if n.logger != nil {
			n.logger.Printf("[Email] send to %s failed: %v", recipient, err)
		}
	}
}

type NoopNotifier struct{}

func (NoopNotifier) Send(string, string, string) {}

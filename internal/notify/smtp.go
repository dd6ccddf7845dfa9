package notify

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"github.com/navportal/navportal/internal/config"
)

// Dialer sends composed messages.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers verification messages by smtp.
type SMTPSender struct {
	from   string
	dialer Dialer
}

// NewSMTPSender creates a sender for the smtp server in cfg.
// Without cfg.From the username is used as sender address.
func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	return NewSMTPSenderWithDialer(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password))
}

// NewSMTPSenderWithDialer creates a sender using d for delivery.
func NewSMTPSenderWithDialer(cfg config.SMTP, d Dialer) *SMTPSender {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &SMTPSender{from: from, dialer: d}
}

// Compose builds the mail for msg.
func (s *SMTPSender) Compose(msg Message) (*gomail.Message, error) {
	body, err := Body(msg)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", body)
	m.AddAlternative("text/plain", "Confirm your email address: "+msg.Link)

	return m, nil
}

// SendVerification delivers msg. gomail has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) SendVerification(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.Compose(msg)
	if err != nil {
		return err
	}

	return errors.Wrap(s.dialer.DialAndSend(m), "send verification mail")
}

// Close does nothing, every send uses its own connection.
func (*SMTPSender) Close() error { return nil }

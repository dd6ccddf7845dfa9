// Package notify delivers the verification message sent after registration.
package notify

import (
	"bytes"
	"context"
	"html/template"

	"github.com/pkg/errors"

	"github.com/navportal/navportal/internal/config"
)

// ErrUnsupportedTransport is returned for an unknown mail transport.
var ErrUnsupportedTransport = errors.New("unsupported mail transport")

// Message is one verification message.
type Message struct {
	To       string `json:"email"`
	Username string `json:"username"`
	Link     string `json:"link"`
	Subject  string `json:"subject"`
}

// Sender delivers verification messages.
type Sender interface {
	SendVerification(ctx context.Context, msg Message) error
	Close() error
}

var bodyTemplate = template.Must(template.New("verification").Parse(`<h1>Welcome to the company portal, {{.Username}}</h1>
<p>Please confirm your email address by opening the link below:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>If you did not create an account, ignore this message.</p>
`))

// Body renders the html body of msg.
func Body(msg Message) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, msg); err != nil {
		return "", errors.Wrap(err, "render verification message")
	}

	return buf.String(), nil
}

// New creates the sender selected by cfg.Transport.
func New(cfg config.Mail) (Sender, error) {
	switch cfg.Transport {
	case config.MailTransportLog, "":
		return &LogSender{}, nil
	case config.MailTransportSMTP:
		return NewSMTPSender(cfg.SMTP), nil
	case config.MailTransportAMQP:
		return NewAMQPSender(cfg.AMQP)
	default:
		return nil, errors.Wrap(ErrUnsupportedTransport, cfg.Transport)
	}
}

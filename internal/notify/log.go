package notify

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogSender writes verification messages to the log instead of delivering them.
// It is meant for development setups without a mail server.
type LogSender struct{}

// SendVerification logs msg.
func (*LogSender) SendVerification(_ context.Context, msg Message) error {
	log.Info().
		Str("to", msg.To).
		Str("username", msg.Username).
		Str("link", msg.Link).
		Msg("verification message")

	return nil
}

// Close does nothing.
func (*LogSender) Close() error { return nil }

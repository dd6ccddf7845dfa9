package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/navportal/navportal/internal/config"
)

// Publisher publishes one amqp message.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSender publishes verification messages as json to a durable queue.
// A separate mail worker consumes the queue and does the delivery.
type AMQPSender struct {
	conn    *amqp.Connection
	channel Publisher
	queue   string
}

// NewAMQPSender connects to the broker and declares the queue.
func NewAMQPSender(cfg config.AMQP) (*AMQPSender, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "connect to amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open amqp channel")
	}

	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "declare queue %s", cfg.Queue)
	}

	return &AMQPSender{conn: conn, channel: ch, queue: q.Name}, nil
}

// NewAMQPSenderWithPublisher creates a sender publishing through p to queue.
func NewAMQPSenderWithPublisher(p Publisher, queue string) *AMQPSender {
	return &AMQPSender{channel: p, queue: queue}
}

// SendVerification publishes msg.
func (s *AMQPSender) SendVerification(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode verification message")
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	})

	return errors.Wrap(err, "publish verification message")
}

// Close closes channel and connection.
func (s *AMQPSender) Close() error {
	if c, ok := s.channel.(*amqp.Channel); ok {
		_ = c.Close()
	}

	if s.conn == nil {
		return nil
	}

	return errors.Wrap(s.conn.Close(), "close amqp connection")
}

package notify_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/navportal/navportal/internal/config"
	"github.com/navportal/navportal/internal/notify"
)

var testMessage = notify.Message{
	To:       "jane@company.com",
	Username: "jane",
	Link:     "http://localhost:3000/auth/verify-email?token=abc",
	Subject:  "Please verify your email",
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Mail
		want    interface{}
		wantErr error
	}{
		{name: "default is log", cfg: config.Mail{}, want: &notify.LogSender{}},
		{name: "log", cfg: config.Mail{Transport: config.MailTransportLog}, want: &notify.LogSender{}},
		{name: "smtp", cfg: config.Mail{Transport: config.MailTransportSMTP}, want: &notify.SMTPSender{}},
		{name: "unknown", cfg: config.Mail{Transport: "pigeon"}, wantErr: notify.ErrUnsupportedTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := notify.New(tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
			require.NoError(t, s.Close())
		})
	}
}

func TestBody(t *testing.T) {
	body, err := notify.Body(notify.Message{Username: "<b>jane</b>", Link: "https://portal/verify?token=a&b"})
	require.NoError(t, err)
	assert.Contains(t, body, "&lt;b&gt;jane&lt;/b&gt;")
	assert.Contains(t, body, `href="https://portal/verify?token=a&amp;b"`)
}

func TestLogSender(t *testing.T) {
	require.NoError(t, (&notify.LogSender{}).SendVerification(context.Background(), testMessage))
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPSender(t *testing.T) {
	d := &fakeDialer{}
	s := notify.NewSMTPSenderWithDialer(config.SMTP{Username: "portal@company.com"}, d)

	require.NoError(t, s.SendVerification(context.Background(), testMessage))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"portal@company.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{testMessage.To}, m.GetHeader("To"))
	assert.Equal(t, []string{testMessage.Subject}, m.GetHeader("Subject"))

	var raw bytes.Buffer
	_, err := m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "text/html")

	d.err = errors.New("connection refused") //nolint:goerr113
	require.ErrorContains(t, s.SendVerification(context.Background(), testMessage), "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.SendVerification(ctx, testMessage), context.Canceled)
}

type fakePublisher struct {
	key string
	msg amqp.Publishing
}

func (p *fakePublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	p.key = key
	p.msg = msg

	return nil
}

func TestAMQPSender(t *testing.T) {
	p := &fakePublisher{}
	s := notify.NewAMQPSenderWithPublisher(p, "navportal.verification")

	require.NoError(t, s.SendVerification(context.Background(), testMessage))
	assert.Equal(t, "navportal.verification", p.key)
	assert.Equal(t, "application/json", p.msg.ContentType)
	assert.Equal(t, amqp.Persistent, p.msg.DeliveryMode)

	var got notify.Message
	require.NoError(t, json.Unmarshal(p.msg.Body, &got))
	assert.Equal(t, testMessage, got)

	require.NoError(t, s.Close())
}

func TestRecorder(t *testing.T) {
	r := &notify.Recorder{}

	_, ok := r.Last()
	assert.False(t, ok)

	require.NoError(t, r.SendVerification(context.Background(), testMessage))

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, testMessage, last)
	assert.Len(t, r.Messages(), 1)

	r.Err = errors.New("down") //nolint:goerr113
	require.Error(t, r.SendVerification(context.Background(), testMessage))
	assert.Len(t, r.Messages(), 1)
}

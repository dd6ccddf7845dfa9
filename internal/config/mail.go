package config

const (
	// MailTransportLog only writes verification messages to the log.
	MailTransportLog = "log"
	// MailTransportSMTP delivers verification messages by smtp.
	MailTransportSMTP = "smtp"
	// MailTransportAMQP publishes verification messages to a rabbitmq queue.
	MailTransportAMQP = "amqp"
)

// Mail holds the delivery settings for verification messages.
type Mail struct {
	Transport string
	Subject   string
	SMTP      SMTP
	AMQP      AMQP
}

// SMTP server settings.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// AMQP broker settings.
type AMQP struct {
	URL   string
	Queue string
}

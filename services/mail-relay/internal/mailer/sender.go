package mailer

import (
	gomail "gopkg.in/gomail.v2"
)

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender is the delivery seam; handlers are tested against the
// in-memory implementation.
type Sender interface {
	Send(m Message) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

// Send dials per message. One failed SMTP conversation is a terminal
// failure for that request; nothing queues or retries.
func (s *SMTPSender) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Text)
	msg.AddAlternative("text/html", m.HTML)
	return s.dialer.DialAndSend(msg)
}

// InMemorySender records messages for tests.
type InMemorySender struct {
	Outbox []Message
}

func (s *InMemorySender) Send(m Message) error {
	s.Outbox = append(s.Outbox, m)
	return nil
}

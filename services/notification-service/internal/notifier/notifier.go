package notifier

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Notifier is the delivery seam for operator alerts (console for dev,
// email for the real deployment).
type Notifier interface {
	Notify(subject, message string) error
}

type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s\n", subject, message)
	return nil
}

// EmailNotifier mails each alert to the operations inbox.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmail(host string, port int, user, pass, from, to string) *EmailNotifier {
	return &EmailNotifier{dialer: gomail.NewDialer(host, port, user, pass), from: from, to: to}
}

func (e *EmailNotifier) Notify(subject, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", e.from)
	msg.SetHeader("To", e.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)
	if err := e.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send alert mail: %w", err)
	}
	return nil
}

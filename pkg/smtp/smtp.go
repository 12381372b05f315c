package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Client is the mail client used to deliver event notifications.
type Client struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

// NewClient initializes a Client sending from the given address.
func NewClient(dialer *gomail.Dialer, from, domain string) *Client {
	return &Client{
		dialer: dialer,
		from:   from,
		domain: domain,
	}
}

// Send delivers a plain-text message to a single recipient.
func (c *Client) Send(to, subject, body string) error {
	msg := gomail.NewMessage()

	msg.SetHeader("Message-ID", generateMessageID(c.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := c.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func generateMessageID(domain string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}

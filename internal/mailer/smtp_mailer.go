package mailer

import (
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends verification mail through a plain SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

func NewSMTPMailer(host string, port int, user, password, domain string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
		domain: domain,
	}
}

func (m *SMTPMailer) SendVerification(to string, codeID uuid.UUID, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", verificationSubject)
	msg.SetBody("text/html", verificationBody(m.domain, codeID, code))

	return m.dialer.DialAndSend(msg)
}

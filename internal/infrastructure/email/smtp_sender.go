package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
)

// Sender delivers outbound mail
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail over implicit-TLS SMTP (port 465 style)
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	if from == "" {
		from = username
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers one HTML message.
func (s *SMTPSender) Send(to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", s.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	addr := s.host + ":" + s.port
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// OTPBody renders the verification-code message sent to a merchant.
func OTPBody(merchantName, applicationID, otp string) (subject, body string) {
	subject = "Your GoWaveline application access code"
	body = fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your one-time access code for application <strong>%s</strong> is:</p>
<p style="font-size:24px;letter-spacing:4px;"><strong>%s</strong></p>
<p>Enter it on the application page to continue where you left off.</p>`,
		merchantName, applicationID, otp,
	)
	return subject, body
}

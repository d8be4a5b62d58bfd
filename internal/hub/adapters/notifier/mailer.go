// Package notifier contains the best-effort welcome notification adapters.
// Delivery failures are surfaced as errors to be logged by the caller; they
// must never affect the registration that triggered them.
package notifier

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"

	svc "agrohub/internal/hub/ports/services"
)

const welcomeSubject = "Welcome to Agro-Smart-Hub!"

const welcomeHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Welcome</title>
  </head>
  <body>
    <p>Dear {{.Name}},</p>
    <p>Thrilled to have you as part of the AgroSmartHub community!</p>
    <p>🌾 Next Steps: Our dedicated team will be reaching out to you soon.</p>
    <p>
      💡 Personalized Support: Get ready for tailored assistance to maximize
      your farming success.
    </p>
    <p>
      Your journey with AgroSmartHub is about to blossom. If you have any
      questions or need assistance, our team is here to help. Stay tuned for a
      call from our team!
    </p>
    <p>Best,</p>
    <p>AgroSmartHub Team</p>
  </body>
</html>
`

var welcomeTemplate = template.Must(template.New("welcome").Parse(welcomeHTML))

// Mailer sends the welcome email over an implicit-TLS SMTP relay (port 465).
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer creates an SMTP mailer.
func NewMailer(host string, port int, username, password, from string) svc.Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendWelcome composes the fixed welcome template with the recipient's name
// and delivers it. The context bounds the connection dial.
func (m *Mailer) SendWelcome(ctx context.Context, email, firstName string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, struct{ Name string }{Name: firstName}); err != nil {
		return fmt.Errorf("rendering welcome template: %w", err)
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", m.from) +
			fmt.Sprintf("To: %s\r\n", email) +
			fmt.Sprintf("Subject: %s\r\n", welcomeSubject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body.String(),
	)

	serverAddr := net.JoinHostPort(m.host, strconv.Itoa(m.port))

	// Implicit TLS, as used on port 465.
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{},
		Config:    &tls.Config{ServerName: m.host},
	}

	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("dialing smtp server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(email); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message writer: %w", err)
	}

	return nil
}

package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"time"

	"rxquote/internal/config"
	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"

	gomail "gopkg.in/mail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer delivers messages synchronously over SMTP.
type SMTPMailer struct {
	dialer   dialer
	from     string
	fromName string
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = 30 * time.Second
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	return &SMTPMailer{dialer: d, from: cfg.From, fromName: cfg.FromName}
}

func (m *SMTPMailer) Send(ctx context.Context, msg entities.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(m.build(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

func (m *SMTPMailer) build(msg entities.MailMessage) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		gm.SetBody("text/plain", msg.Text)
		gm.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		gm.SetBody("text/html", msg.HTML)
	default:
		gm.SetBody("text/plain", msg.Text)
	}

	for _, a := range msg.Attachments {
		data := a.Data
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		gm.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {contentType}}),
		)
	}
	return gm
}

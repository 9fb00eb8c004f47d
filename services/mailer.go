package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/smtp"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gomail "gopkg.in/gomail.v2"
)

// ErrMissingAttachment is returned when a receipt email is sent without the
// receipt PDF.
var ErrMissingAttachment = errors.New("missing attachment")

type MailerConfig struct {
	Sender       string // Gmail address the receipts go out from
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Mailer delivers receipt emails through Gmail SMTP. A short-lived access token
// is minted from the stored refresh credential on every send; nothing is cached
// between calls.
type Mailer struct {
	cfg   MailerConfig
	token func(ctx context.Context) (string, error)
	send  func(token string, msg *gomail.Message) error
}

func NewMailer(cfg MailerConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	m.token = m.accessToken
	m.send = m.sendSMTP
	return m
}

// SendEmail sends a single-recipient plain-text message carrying exactly one
// binary attachment. The attachment is required.
func (m *Mailer) SendEmail(to, subject, body, attachmentName string, attachment []byte) error {
	if len(attachment) == 0 {
		return ErrMissingAttachment
	}

	token, err := m.token(context.Background())
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	if err := m.send(token, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) accessToken(ctx context.Context) (string, error) {
	conf := &oauth2.Config{
		ClientID:     m.cfg.ClientID,
		ClientSecret: m.cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	source := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: m.cfg.RefreshToken})
	token, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("refresh gmail access token: %w", err)
	}
	return token.AccessToken, nil
}

func (m *Mailer) sendSMTP(token string, msg *gomail.Message) error {
	d := gomail.NewDialer("smtp.gmail.com", 587, m.cfg.Sender, "")
	d.Auth = &xoauth2Auth{user: m.cfg.Sender, token: token}
	return d.DialAndSend(msg)
}

// xoauth2Auth implements the SASL XOAUTH2 mechanism Gmail expects when an SMTP
// session is authorized with an OAuth2 access token instead of a password.
type xoauth2Auth struct {
	user  string
	token string
}

func (a *xoauth2Auth) Start(_ *smtp.ServerInfo) (string, []byte, error) {
	resp := "user=" + a.user + "\x01auth=Bearer " + a.token + "\x01\x01"
	return "XOAUTH2", []byte(resp), nil
}

func (a *xoauth2Auth) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		// On failure the server sends a base64 error blob; an empty reply makes
		// it return the final SMTP error.
		return []byte(""), nil
	}
	return nil, nil
}

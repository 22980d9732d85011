// Package mail implements the outbound mail service over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"pasar/config"
	"pasar/internal/domain/service"
	"pasar/internal/errors"
)

// smtpMailer is a concrete implementation of the Mailer interface using plain SMTP.
type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		auth: smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host),
		from: from,
	}, nil
}

// SendPasswordReset mails the reset link to the account's address.
// net/smtp offers no context support, so the send runs in a goroutine and the
// caller's deadline still bounds the wait.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	msg := fmt.Sprintf(`To: %s
Subject: Password Reset Request

You requested a password reset.

Open the link below to choose a new password:

%s

If you did not request this, you can ignore this mail.
`, to, resetURL)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "send password reset mail")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "send password reset mail")
		}

		return nil
	}
}

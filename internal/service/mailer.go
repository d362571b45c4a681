package service

import (
	"github.com/hqdang/Polliwog/config"
	"github.com/rs/zerolog/log"
)

// Mailer delivers transactional mail (OTP codes, password resets). Actual
// SMTP transport lives outside this service; the default implementation
// writes the message to the log, which is what local and CI environments use.
type Mailer interface {
	Send(to, subject, body string) error
}

type logMailer struct {
	from string
}

func NewLogMailer(cfg *config.Config) Mailer {
	return &logMailer{from: cfg.Mail.From}
}

func (m *logMailer) Send(to, subject, body string) error {
	log.Info().
		Str("from", m.from).
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("mail_out")
	return nil
}

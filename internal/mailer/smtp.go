// Package mailer delivers outgoing email.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

const smtpsPort = 465

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTP sends email through an SMTP relay.
type SMTP struct {
	from   string
	client sender
	logger *logger.Logger
}

var _ model.Mailer = (*SMTP)(nil)

// NewSMTP creates an SMTP mailer. Authentication is enabled when a username
// is configured; port 465 uses implicit TLS, other ports opportunistic STARTTLS.
func NewSMTP(cfg SMTPConfig, logger *logger.Logger) (*SMTP, error) {
	var opts []mail.Option
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Port == smtpsPort {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithPort(cfg.Port), mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &SMTP{from: from, client: client, logger: logger}, nil
}

// Send builds a multipart text/HTML message and delivers it.
func (s *SMTP) Send(ctx context.Context, msg model.Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Error("Mailer: failed to send email", "to", msg.To, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Mailer: email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

// ValidateAddress reports whether addr is a bare address a message can be
// sent to. Display-name forms such as "Ann <ann@x.com>" are rejected.
func ValidateAddress(addr string) error {
	if strings.ContainsAny(addr, "<> \t") {
		return fmt.Errorf("address %q must not contain a display name or spaces", addr)
	}
	if err := mail.NewMsg().To(addr); err != nil {
		return fmt.Errorf("invalid address %q: %w", addr, err)
	}
	return nil
}

func (s *SMTP) build(msg model.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("failed to set sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("failed to set recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}

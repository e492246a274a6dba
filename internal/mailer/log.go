package mailer

import (
	"context"

	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// Log is a development mailer that writes messages to the application log
// instead of delivering them. Bodies are logged at debug level only.
type Log struct {
	logger *logger.Logger
}

var _ model.Mailer = (*Log)(nil)

func NewLog(logger *logger.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Send(ctx context.Context, msg model.Message) error {
	l.logger.Info("Mailer: email not delivered, smtp is not configured", "to", msg.To, "subject", msg.Subject)
	l.logger.DebugContext(ctx, "Mailer: email body", "to", msg.To, "text", msg.Text)
	return nil
}

package email

import (
	"context"

	"blogarchive-backend/pkg/logger"
)

// Sender delivers a single email. The SMTP integration is configured per
// deployment; LogSender stands in everywhere else.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, to, subject, _ string) error {
	logger.Info("email (log sender)", map[string]interface{}{
		"to":      to,
		"subject": subject,
	})
	return nil
}

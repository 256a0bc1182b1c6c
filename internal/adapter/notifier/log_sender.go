package notifier

import (
	"context"
	"log/slog"

	"github.com/internhub/intake-backend/internal/domain"
)

// LogSender writes notifications to the structured log. It is always wired
// so every notification leaves at least one trace, and it stands in for the
// real email/SMS gateway in development.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the notification.
func (s *LogSender) Send(_ context.Context, n domain.Notification) error {
	s.log.Info("notification",
		slog.String("recipient_id", n.RecipientID.String()),
		slog.String("title", n.Title),
		slog.String("message", n.Message),
		slog.String("priority", string(n.Priority)),
	)
	return nil
}

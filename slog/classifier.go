package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/execscout"
)

// Ensure LoggingClassifier implements execscout.NameClassifier.
var _ execscout.NameClassifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a NameClassifier with debug logging.
// Classification runs once per candidate node, so it logs at Debug level.
type LoggingClassifier struct {
	next   execscout.NameClassifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next execscout.NameClassifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// IsPersonName delegates to the wrapped classifier and logs the verdict.
func (c *LoggingClassifier) IsPersonName(ctx context.Context, text string) (ok bool, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("classify",
			"text", text,
			"person", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.IsPersonName(ctx, text)
}

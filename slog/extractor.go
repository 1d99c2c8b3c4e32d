package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/execscout"
)

// Ensure LoggingExtractor implements execscout.PeopleExtractor.
var _ execscout.PeopleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PeopleExtractor with logging.
type LoggingExtractor struct {
	next   execscout.PeopleExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next execscout.PeopleExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the record count.
func (e *LoggingExtractor) Extract(ctx context.Context, markup, companyName string) (records []execscout.PersonRecord, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"company", companyName,
			"bytes", len(markup),
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, markup, companyName)
}

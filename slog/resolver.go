package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/execscout"
)

// Ensure LoggingResolver implements execscout.ProfileResolver.
var _ execscout.ProfileResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a ProfileResolver with logging.
type LoggingResolver struct {
	next   execscout.ProfileResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next execscout.ProfileResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// ResolveProfile delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) ResolveProfile(ctx context.Context, companyName, personName string) (url string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve profile",
			"company", companyName,
			"name", personName,
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveProfile(ctx, companyName, personName)
}

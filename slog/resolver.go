package slog

import (
	"log/slog"
	"time"

	"github.com/scrapeo/scrapeo"
)

// Ensure LoggingResolver implements scrapeo.Resolver.
var _ scrapeo.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver and logs every query it resolves.
type LoggingResolver struct {
	next   scrapeo.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next scrapeo.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// ResolveText delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) ResolveText(q scrapeo.Query) (text string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"name", q.Name,
			"query", q.String(),
			"found", err == nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveText(q)
}

// ResolveAll delegates to the wrapped resolver and logs one line per result
// plus a summary.
func (r *LoggingResolver) ResolveAll(queries []scrapeo.Query) []scrapeo.Result {
	begin := time.Now()
	results := r.next.ResolveAll(queries)

	found := 0
	for _, res := range results {
		if res.Found() {
			found++
		}
		r.logger.Debug("resolve",
			"name", res.Query.Name,
			"query", res.Query.String(),
			"found", res.Found(),
			"err", res.Err,
		)
	}
	r.logger.Info("resolve all",
		"queries", len(queries),
		"found", found,
		"duration", time.Since(begin),
	)
	return results
}

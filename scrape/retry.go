package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/scrapeo/scrapeo"
)

// Ensure RetryFetcher implements scrapeo.Fetcher.
var _ scrapeo.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher retries failed fetches with backoff. One retry is made per
// entry in Delays, sleeping that long first. Errors coded EINVALID are
// returned immediately since repeating the request cannot fix them.
type RetryFetcher struct {
	Next   scrapeo.Fetcher
	Delays []time.Duration
	Logger *slog.Logger
}

// NewRetryFetcher returns a RetryFetcher making up to retries extra attempts
// using the leading DefaultRetryDelays.
func NewRetryFetcher(next scrapeo.Fetcher, retries int, logger *slog.Logger) *RetryFetcher {
	delays := DefaultRetryDelays()
	retries = max(0, min(retries, len(delays)))
	return &RetryFetcher{Next: next, Delays: delays[:retries], Logger: logger}
}

// Fetch implements scrapeo.Fetcher.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.Delays); attempt++ {
		html, err := f.Next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(f.Delays) || scrapeo.ErrorCode(err) == scrapeo.EINVALID {
			break
		}

		if f.Logger != nil {
			f.Logger.Warn("retry", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.Delays[attempt]):
		}
	}

	return "", lastErr
}

// Close implements scrapeo.Fetcher.
func (f *RetryFetcher) Close() error {
	return f.Next.Close()
}

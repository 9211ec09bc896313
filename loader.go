package scrapeo

import "context"

// Loader returns the raw HTML of a source such as a file path or URL.
type Loader interface {
	Load(ctx context.Context, source string) (html string, err error)
}

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for fetches.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled while waiting.
	Wait(ctx context.Context, domain string) error
}

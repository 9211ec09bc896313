package mock

import (
	"context"

	"github.com/scrapeo/scrapeo"
)

var _ scrapeo.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scrapeo.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ scrapeo.Loader = (*Loader)(nil)

// Loader is a mock implementation of scrapeo.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, source string) (string, error)
}

func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	return l.LoadFn(ctx, source)
}

var _ scrapeo.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of scrapeo.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}

package main

import (
	"context"
	"net/url"
	"strings"

	"github.com/scrapeo/scrapeo"
)

// Compile-time interface verification.
var _ scrapeo.Loader = (*SourceLoader)(nil)

// SourceLoader implements scrapeo.Loader by sending http(s) URLs to a
// fetcher and everything else to a file loader.
type SourceLoader struct {
	Files   scrapeo.Loader
	Fetcher scrapeo.Fetcher

	// Limiter, when set, is waited on per host before each fetch.
	Limiter scrapeo.DomainLimiter
}

// Load implements scrapeo.Loader.
func (l *SourceLoader) Load(ctx context.Context, source string) (string, error) {
	if !IsURL(source) {
		return l.Files.Load(ctx, source)
	}

	if l.Fetcher == nil {
		return "", scrapeo.Errorf(scrapeo.EINVALID, "no fetcher configured for %s", source)
	}

	if l.Limiter != nil {
		u, err := url.Parse(source)
		if err != nil {
			return "", scrapeo.Errorf(scrapeo.EINVALID, "invalid URL %q: %v", source, err)
		}
		if err := l.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	return l.Fetcher.Fetch(ctx, source)
}

// IsURL reports whether source names an http or https URL.
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

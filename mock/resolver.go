package mock

import "github.com/scrapeo/scrapeo"

var _ scrapeo.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of scrapeo.Resolver.
type Resolver struct {
	ResolveTextFn func(q scrapeo.Query) (string, error)
	ResolveAllFn  func(queries []scrapeo.Query) []scrapeo.Result
}

func (r *Resolver) ResolveText(q scrapeo.Query) (string, error) {
	return r.ResolveTextFn(q)
}

func (r *Resolver) ResolveAll(queries []scrapeo.Query) []scrapeo.Result {
	return r.ResolveAllFn(queries)
}

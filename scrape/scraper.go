// Package scrape resolves queries against parsed documents, singly or in
// batches across several sources.
package scrape

import "github.com/scrapeo/scrapeo"

var _ scrapeo.Resolver = (*Scraper)(nil)

// Scraper resolves queries against one parsed document by finding the
// matching element and handing it to an analyzer.
//
// Resolutions only read the document, so a Scraper may be shared.
type Scraper struct {
	Document scrapeo.Document

	// Analyzer picks the relevant string of a matched element.
	// Defaults to scrapeo.TextAnalyzer when nil.
	Analyzer scrapeo.Analyzer
}

// ResolveText implements scrapeo.Resolver.
// Returned errors keep the analyzer's code and name the query.
func (s *Scraper) ResolveText(q scrapeo.Query) (string, error) {
	el := s.Document.Find(q.Tag, q.Criteria)

	text, err := s.analyzer().RelevantText(el, q.ExtractAttr)
	if err != nil {
		return "", scrapeo.Errorf(scrapeo.ErrorCode(err), "%s: %s", q, scrapeo.ErrorMessage(err))
	}
	return text, nil
}

// ResolveAll implements scrapeo.Resolver. Queries are resolved one after
// another; a failed query does not stop the rest.
func (s *Scraper) ResolveAll(queries []scrapeo.Query) []scrapeo.Result {
	results := make([]scrapeo.Result, len(queries))
	for i, q := range queries {
		value, err := s.ResolveText(q)
		results[i] = scrapeo.Result{Query: q, Value: value, Err: err}
	}
	return results
}

func (s *Scraper) analyzer() scrapeo.Analyzer {
	if s.Analyzer == nil {
		return scrapeo.TextAnalyzer{}
	}
	return s.Analyzer
}

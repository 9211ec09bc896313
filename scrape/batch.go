package scrape

import (
	"context"

	"github.com/scrapeo/scrapeo"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources processed at once when
// Batch.Concurrency is not set.
const DefaultConcurrency = 3

// Batch resolves the same queries against several source documents.
// Each source is loaded, parsed, and resolved on its own; nothing mutable
// is shared between sources.
type Batch struct {
	Loader scrapeo.Loader
	Parser scrapeo.Parser

	// Resolver builds the resolver for a parsed document.
	// Defaults to a Scraper with the default analyzer.
	Resolver func(doc scrapeo.Document) scrapeo.Resolver

	Concurrency int
}

// Run returns one report per source, in source order. A source that fails
// to load or parse gets a report with Err set and does not affect the
// others. Run itself fails only if ctx is canceled.
func (b *Batch) Run(ctx context.Context, sources []string, queries []scrapeo.Query) ([]scrapeo.Report, error) {
	reports := make([]scrapeo.Report, len(sources))

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Per-source failures are recorded in reports, never returned to the
	// group, so one bad source cannot cancel the rest.
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, source := range sources {
		g.Go(func() error {
			reports[i] = b.runOne(ctx, source, queries)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return reports, err
	}
	return reports, nil
}

func (b *Batch) runOne(ctx context.Context, source string, queries []scrapeo.Query) scrapeo.Report {
	report := scrapeo.Report{Source: source}

	if err := ctx.Err(); err != nil {
		report.Err = err
		return report
	}

	html, err := b.Loader.Load(ctx, source)
	if err != nil {
		report.Err = err
		return report
	}

	doc, err := b.Parser.Parse(html)
	if err != nil {
		report.Err = err
		return report
	}

	report.Results = b.resolver(doc).ResolveAll(queries)
	return report
}

func (b *Batch) resolver(doc scrapeo.Document) scrapeo.Resolver {
	if b.Resolver == nil {
		return &Scraper{Document: doc}
	}
	return b.Resolver(doc)
}

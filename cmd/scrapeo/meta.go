package main

import (
	"fmt"

	"github.com/scrapeo/scrapeo"
	"github.com/scrapeo/scrapeo/scrape"
	scrapeoslog "github.com/scrapeo/scrapeo/slog"
)

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	input, err := c.queryInput(deps.Queries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapeo.ErrorMessage(err))
		return err
	}

	queries := deps.Queries.Build(input)
	if len(queries) == 0 {
		err := scrapeo.Errorf(scrapeo.EINVALID, "nothing to extract: use --attr, --val, or a shortcut flag")
		fmt.Fprintf(deps.Stderr, "error: %s\n", scrapeo.ErrorMessage(err))
		return err
	}

	batch := &scrape.Batch{
		Loader: deps.Loader,
		Parser: deps.Parser,
		Resolver: func(doc scrapeo.Document) scrapeo.Resolver {
			return scrapeoslog.NewLoggingResolver(&scrape.Scraper{Document: doc}, deps.Logger)
		},
		Concurrency: c.Concurrency,
	}

	reports, err := batch.Run(deps.Ctx, c.Sources, queries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	failures := c.print(deps, reports, len(queries))
	if len(failures) > 0 {
		return scrapeo.Errorf(summaryCode(failures), "%d of %d lookups produced no value", len(failures), len(queries)*len(reports))
	}
	return nil
}

// summaryCode returns the code shared by every failure, or EINTERNAL when
// failures differ in kind.
func summaryCode(failures []string) string {
	for _, code := range failures[1:] {
		if code != failures[0] {
			return scrapeo.EINTERNAL
		}
	}
	return failures[0]
}

// queryInput collects the ad-hoc criteria and active shortcuts.
// Returns EINVALID for an unknown --shortcut name.
func (c *MetaCmd) queryInput(builder *scrapeo.QueryBuilder) (scrapeo.QueryInput, error) {
	active := map[string]bool{
		scrapeo.ShortcutMetaDescription: c.MetaDescription,
		scrapeo.ShortcutRobotsMeta:      c.RobotsMeta,
		scrapeo.ShortcutTitleTag:        c.TitleTag,
		scrapeo.ShortcutCanonical:       c.Canonical,
	}
	for _, name := range c.Shortcut {
		if _, ok := builder.Shortcut(name); !ok {
			return scrapeo.QueryInput{}, scrapeo.Errorf(scrapeo.EINVALID, "unknown shortcut %q. Run 'scrapeo shortcuts' to list them", name)
		}
		active[name] = true
	}

	return scrapeo.QueryInput{
		Tag:         c.Tag,
		Attribute:   c.Attr,
		Value:       c.Val,
		ExtractAttr: c.SEOAttr,
		Shortcuts:   active,
	}, nil
}

// print writes values to stdout and misses to stderr, returning the error
// code of each lookup (query × source) that produced no value.
//
// A single query against a single source prints the bare value. Otherwise
// each value is printed as "name: value", and several sources are grouped
// under "==> source <==" headers.
func (c *MetaCmd) print(deps *Dependencies, reports []scrapeo.Report, queryCount int) []string {
	bare := len(reports) == 1 && queryCount == 1
	grouped := len(reports) > 1

	var failures []string
	for i, report := range reports {
		if grouped {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "==> %s <==\n", report.Source)
		}

		if report.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", report.Source, errorText(report.Err))
			code := scrapeo.ErrorCode(report.Err)
			for range queryCount {
				failures = append(failures, code)
			}
			continue
		}

		for _, res := range report.Results {
			if !res.Found() {
				failures = append(failures, scrapeo.ErrorCode(res.Err))
				fmt.Fprintf(deps.Stderr, "%s: %s\n", res.Query.Name, errorText(res.Err))
				continue
			}
			if bare {
				fmt.Fprintln(deps.Stdout, res.Value)
				continue
			}
			fmt.Fprintf(deps.Stdout, "%s: %s\n", res.Query.Name, res.Value)
		}
	}
	return failures
}

// errorText prefers the application message and falls back to the raw
// error for failures outside the scrapeo error space, such as I/O errors.
func errorText(err error) string {
	if scrapeo.ErrorCode(err) == scrapeo.EINTERNAL {
		return err.Error()
	}
	return scrapeo.ErrorMessage(err)
}
